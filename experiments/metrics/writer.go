package metrics

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing X
	Agent2 int // AgentConfig.ID playing O
	GameMetric
}

type MoveRecord struct {
	Game int `json:"game"` // GameRecord.ID
	MoveMetric
}

var (
	agentConfigHeader = []string{"id", "kind", "goroutines", "duration", "episodes", "cutoff", "seed"}
	gameRecordHeader  = []string{"id", "game_id", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves", "captures"}
)

func (c AgentConfig) row() []string {
	return []string{
		strconv.Itoa(c.ID),
		c.Kind,
		strconv.Itoa(c.Goroutines),
		c.Duration.String(),
		strconv.Itoa(c.Episodes),
		strconv.Itoa(c.Cutoff),
		strconv.FormatUint(c.Seed, 10),
	}
}

func (r GameRecord) row() []string {
	return []string{
		strconv.Itoa(r.ID),
		r.GameID,
		strconv.Itoa(r.Agent1),
		strconv.Itoa(r.Agent2),
		r.StartingPlayer,
		r.Winner,
		r.StartTime.Format(time.RFC3339),
		r.EndTime.Format(time.RFC3339),
		r.Duration.String(),
		strconv.Itoa(r.TotalMoves),
		strconv.Itoa(r.Captures),
	}
}

// Writer stores the records of one run in its own timestamped directory.
type Writer struct {
	baseDir string
}

func NewWriter(outDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(outDir, name, timestamp)
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
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, config.row())
	}
	return w.writeCSV("agent_configs.csv", agentConfigHeader, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.row())
	}
	return w.writeCSV("game_records.csv", gameRecordHeader, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	err = csv.NewWriter(f).WriteAll(append([][]string{header}, rows...))
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// WriteMoveRecords stores one JSON object per line.
func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	f, err := os.Create(filepath.Join(w.baseDir, "move_records.jsonl"))
	if err != nil {
		return fmt.Errorf("failed to create move_records.jsonl: %w", err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	for _, record := range records {
		line, err := sonic.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to encode move record: %w", err)
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("failed to write move_records.jsonl: %w", err)
	}
	return nil
}
