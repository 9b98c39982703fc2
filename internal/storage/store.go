package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/lifesim/internal/life"
	"github.com/san-kum/lifesim/internal/pattern"
	"github.com/san-kum/lifesim/internal/sim"
)

const (
	metadataFile   = "metadata.json"
	populationFile = "population.csv"
	finalFile      = "final.cells"
)

var ErrNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
	create  func(path string) (io.WriteCloser, error)
}

func New(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		create:  func(path string) (io.WriteCloser, error) { return os.Create(path) },
	}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Pattern     string             `json:"pattern"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Density     float64            `json:"density,omitempty"`
	Width       int                `json:"width"`
	Height      int                `json:"height"`
	Generations int                `json:"generations"`
	StepsTaken  int                `json:"steps_taken"`
	CycleStart  int                `json:"cycle_start"`
	CyclePeriod int                `json:"cycle_period"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Save writes a finished run and returns its id. Fields of meta derived from
// the result are overwritten. A run that cannot be written completely is
// removed.
func (s *Store) Save(meta RunMetadata, result *sim.Result) (string, error) {
	now := time.Now()
	meta.ID = fmt.Sprintf("%s_%d", slug(meta.Pattern), now.UnixNano())
	meta.Timestamp = now
	meta.StepsTaken = result.StepsTaken
	meta.CycleStart = result.CycleStart
	meta.CyclePeriod = result.CyclePeriod
	meta.Metrics = result.Metrics
	if result.Final != nil {
		meta.Width = result.Final.Width()
		meta.Height = result.Final.Height()
	}

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	if err := s.writeRun(runDir, meta, result); err != nil {
		os.RemoveAll(runDir)
		return "", fmt.Errorf("run %s: %w", meta.ID, err)
	}

	return meta.ID, nil
}

// writeRun writes every file of a run into runDir.
func (s *Store) writeRun(runDir string, meta RunMetadata, result *sim.Result) error {
	err := s.writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	})
	if err != nil {
		return err
	}

	err = s.writeFile(filepath.Join(runDir, populationFile), func(w io.Writer) error {
		return writePopulation(w, result.Population)
	})
	if err != nil {
		return err
	}

	if result.Final == nil {
		return nil
	}
	return s.writeFile(filepath.Join(runDir, finalFile), func(w io.Writer) error {
		return pattern.Encode(w, meta.ID, result.Final)
	})
}

// writeFile creates path, hands it to write and reports the first error,
// including one from closing the file.
func (s *Store) writeFile(path string, write func(w io.Writer) error) (err error) {
	f, err := s.create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

func writePopulation(w io.Writer, population []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"generation", "population"}); err != nil {
		return err
	}
	for gen, p := range population {
		if err := cw.Write([]string{strconv.Itoa(gen), strconv.Itoa(p)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// List returns every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) LoadPopulation(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, populationFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}

	population := make([]int, 0, len(records))
	for i, record := range records {
		if i == 0 || len(record) < 2 {
			continue
		}
		p, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("run %s line %d: %w", runID, i+1, err)
		}
		population = append(population, p)
	}
	return population, nil
}

// LoadFinal rebuilds the last generation of a run.
func (s *Store) LoadFinal(runID string) (*life.Field, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, finalFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s has no final generation", ErrNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	p, err := pattern.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	f, err := life.New(meta.Width, meta.Height)
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if err := pattern.Place(f, p, 0, 0); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return f, nil
}

func slug(name string) string {
	if name == "" {
		return "empty"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, name)
}
