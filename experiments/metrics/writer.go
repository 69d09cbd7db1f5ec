package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type GameRecord struct {
	ID int
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

// Summary is the outcome of a series of games between two players.
type Summary struct {
	Name        string    `yaml:"name"`
	Player1     string    `yaml:"player1"`
	Player2     string    `yaml:"player2"`
	Rounds      int       `yaml:"rounds"`
	P1Wins      int       `yaml:"player1_wins"`
	P2Wins      int       `yaml:"player2_wins"`
	TurnLimited int       `yaml:"turn_limited"`
	WinRate     float64   `yaml:"player1_win_rate"`
	Interval    []float64 `yaml:"player1_win_rate_95ci,flow"`
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> and writes every file there.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves", "turn_limited"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.StartingPlayer.String(),
			record.Winner.String(),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.FormatBool(record.TurnLimited),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "row", "col", "direction", "board_hash"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(record.Action.Origin.Row),
			strconv.Itoa(record.Action.Origin.Col),
			record.Action.Direction.String(),
			strconv.FormatUint(record.BoardHash, 16),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteEpisodes(episodes []EpisodeMetric) error {
	header := []string{"episode", "won", "discarded", "moves", "states", "entries", "duration"}
	rows := make([][]string, 0, len(episodes))
	for _, e := range episodes {
		rows = append(rows, []string{
			strconv.Itoa(e.Episode),
			strconv.FormatBool(e.Won),
			strconv.FormatBool(e.Discarded),
			strconv.Itoa(e.Moves),
			strconv.Itoa(e.States),
			strconv.Itoa(e.Entries),
			e.Duration.String(),
		})
	}
	return w.writeCSV("episodes.csv", header, rows)
}

func (w *Writer) WriteSummary(summary Summary) error {
	path := filepath.Join(w.baseDir, "summary.yaml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	err = enc.Encode(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	return enc.Close()
}

// Path joins file onto the writer's directory.
func (w *Writer) Path(file string) string {
	return filepath.Join(w.baseDir, file)
}
