package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/swishapp/court-scraper/internal/catalog"
	"github.com/swishapp/court-scraper/internal/court"
	"github.com/swishapp/court-scraper/internal/logger"
)

const (
	courtsFilename     = "courts.json"
	checkpointFilename = "search_state.json"
	photosDirname      = "photos"
)

// Store handles persistence of the court table, the query checkpoint, and
// downloaded photos.
type Store struct {
	dataDir string
	docsDir string
	log     *logger.Logger
}

// New creates a Store rooted at dataDir, mirroring the court file into
// docsDir. An empty docsDir disables the mirror. Directories are created
// as needed.
func New(dataDir, docsDir string, log *logger.Logger) (*Store, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(filepath.Join(dataDir, photosDirname), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	if docsDir != "" {
		if err := os.MkdirAll(docsDir, 0755); err != nil {
			return nil, fmt.Errorf("creating docs directory: %w", err)
		}
	}

	if log == nil {
		log = logger.Default()
	}

	return &Store{
		dataDir: dataDir,
		docsDir: docsDir,
		log:     log,
	}, nil
}

// CourtsPath returns the path of the primary court data file.
func (s *Store) CourtsPath() string {
	return filepath.Join(s.dataDir, courtsFilename)
}

// checkpointPath returns the path of the query checkpoint file.
func (s *Store) checkpointPath() string {
	return filepath.Join(s.dataDir, checkpointFilename)
}

// Load reads the court table and query checkpoint from disk. Missing files
// mean empty state. A court file that exists without a checkpoint is a
// dataset from before query checkpointing existed; in that case the
// checkpoint is seeded with the legacy query list and a warning is logged,
// since that assumption cannot be verified from the data.
func (s *Store) Load() (*court.Table, *Checkpoint, error) {
	table, err := s.loadCourts()
	if err != nil {
		return nil, nil, err
	}

	cp, found, err := s.loadCheckpoint()
	if err != nil {
		return nil, nil, err
	}

	if !found && table.Len() > 0 {
		legacy := catalog.LegacyQueries()
		for _, q := range legacy {
			cp.Add(q)
		}
		s.log.Warn("no checkpoint alongside existing court data; assuming legacy query set already ran", logger.Fields{
			"courts":          table.Len(),
			"assumed_queries": len(legacy),
		})
	}

	return table, cp, nil
}

// loadCourts reads the court file into a table. Both the current array
// format and the legacy object format (place_id -> record) are accepted;
// legacy records are ordered by place ID since the object form carries no
// order of its own.
func (s *Store) loadCourts() (*court.Table, error) {
	data, err := os.ReadFile(s.CourtsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return court.NewTable(), nil
		}
		return nil, fmt.Errorf("reading court data: %w", err)
	}

	table := court.NewTable()
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return table, nil
	}

	switch trimmed[0] {
	case '[':
		var courts []*court.Court
		if err := json.Unmarshal(trimmed, &courts); err != nil {
			return nil, fmt.Errorf("parsing court data: %w", err)
		}
		for _, c := range courts {
			table.Add(c)
		}
	case '{':
		var byID map[string]*court.Court
		if err := json.Unmarshal(trimmed, &byID); err != nil {
			return nil, fmt.Errorf("parsing legacy court data: %w", err)
		}
		ids := make([]string, 0, len(byID))
		for id := range byID {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			c := byID[id]
			if c.PlaceID == "" {
				c.PlaceID = id
			}
			table.Add(c)
		}
	default:
		return nil, fmt.Errorf("parsing court data: unrecognized format")
	}

	return table, nil
}

// loadCheckpoint reads the checkpoint file. found is false when the file
// does not exist.
func (s *Store) loadCheckpoint() (cp *Checkpoint, found bool, err error) {
	cp = NewCheckpoint()

	data, err := os.ReadFile(s.checkpointPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cp, false, nil
		}
		return nil, false, fmt.Errorf("reading checkpoint: %w", err)
	}

	var file checkpointFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, false, fmt.Errorf("parsing checkpoint: %w", err)
	}
	for _, q := range file.CompletedQueries {
		cp.Add(q)
	}
	return cp, true, nil
}

// SaveCheckpoint writes the checkpoint file.
func (s *Store) SaveCheckpoint(cp *Checkpoint) error {
	data, err := json.MarshalIndent(checkpointFile{CompletedQueries: cp.Queries()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding checkpoint: %w", err)
	}
	if err := os.WriteFile(s.checkpointPath(), data, 0644); err != nil {
		return fmt.Errorf("writing checkpoint: %w", err)
	}
	return nil
}

// SaveCourts writes the court table as a JSON array to the data dir and,
// when a docs dir is configured, mirrors the identical bytes there.
func (s *Store) SaveCourts(table *court.Table) error {
	data, err := json.MarshalIndent(table.Courts(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding court data: %w", err)
	}

	if err := os.WriteFile(s.CourtsPath(), data, 0644); err != nil {
		return fmt.Errorf("writing court data: %w", err)
	}

	if s.docsDir != "" {
		mirror := filepath.Join(s.docsDir, courtsFilename)
		if err := os.WriteFile(mirror, data, 0644); err != nil {
			return fmt.Errorf("writing court data mirror: %w", err)
		}
	}

	return nil
}
