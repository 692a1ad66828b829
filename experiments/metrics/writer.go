package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// AgentConfig describes one tournament entrant.
type AgentConfig struct {
	ID       int
	Strategy string
	Seed     int64
}

type GameRecord struct {
	Game   int
	Agent1 int // AgentConfig.ID playing Red
	Agent2 int // AgentConfig.ID playing Blue
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.Game
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> to hold the CSV files of one run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "seed"}
	return w.write("agent_configs.csv", header, len(configs), func(i int) []string {
		config := configs[i]
		return []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.FormatInt(config.Seed, 10),
		}
	})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"game", "id", "agent1", "agent2", "starting_player", "winner", "red_score", "blue_score",
		"start_time", "end_time", "duration", "total_moves", "truncated"}
	return w.write("game_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		return []string{
			strconv.Itoa(record.Game),
			record.ID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer.String(),
			record.Winner.String(),
			strconv.Itoa(record.RedScore),
			strconv.Itoa(record.BlueScore),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.FormatBool(record.Truncated),
		}
	})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "strategy", "row", "col", "hand_index", "passed",
		"duration", "candidates", "simulations"}
	return w.write("move_records.csv", header, len(records), func(i int) []string {
		record := records[i]
		row, col, index := "", "", ""
		if !record.Passed {
			row = strconv.Itoa(record.Move.Row)
			col = strconv.Itoa(record.Move.Col)
			index = strconv.Itoa(record.Move.HandIndex)
		}
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			record.Strategy,
			row,
			col,
			index,
			strconv.FormatBool(record.Passed),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Simulations),
		}
	})
}

func (w *Writer) write(file string, header []string, n int, row func(i int) []string) error {
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
	for i := 0; i < n; i++ {
		err = writer.Write(row(i))
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
