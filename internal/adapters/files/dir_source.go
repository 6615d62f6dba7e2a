package files

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"route-verifier-service/internal/domain"
	"route-verifier-service/internal/ports"
	"slices"
	"strconv"
	"strings"
)

const (
	GraphFile      = "grafo.csv"
	instancePrefix = "instancia"
	instanceSuffix = ".csv"
	solutionPrefix = "solucion"
	solutionSuffix = ".txt"
)

// DirSource reads a dataset laid out as plain files in one directory:
//
//	grafo.csv        directed edges "i,j,c", one per line, no header
//	instanciaN.csv   workers "v,r", one per line
//	solucionN.txt    route node ids separated by commas, semicolons or whitespace
//
// Fields may be separated by commas or whitespace; blank lines are skipped.
type DirSource struct {
	Dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

func (s *DirSource) LoadEdges(ctx context.Context) ([]domain.Edge, error) {
	path := filepath.Join(s.Dir, GraphFile)

	var edges []domain.Edge
	err := readRecords(path, 3, func(line int, f []string) error {
		src, err := parseNode(f[0])
		if err != nil {
			return err
		}
		dst, err := parseNode(f[1])
		if err != nil {
			return err
		}
		w, err := parseReal(f[2])
		if err != nil {
			return err
		}
		edges = append(edges, domain.Edge{Source: src, Target: dst, Weight: w})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load edges: %w", err)
	}

	return edges, nil
}

// ListInstances returns N for every solucionN.txt whose N is all digits.
// Files with suffixes such as solucion3_greedy.txt are ignored, and zero
// padded names (solucion01.txt) count as the same index.
func (s *DirSource) ListInstances(ctx context.Context) ([]int, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("list instances: read dir %q: %w", s.Dir, err)
	}

	out := make([]int, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, solutionPrefix) || !strings.HasSuffix(name, solutionSuffix) {
			continue
		}

		core := strings.TrimSuffix(strings.TrimPrefix(name, solutionPrefix), solutionSuffix)
		if !isDigits(core) {
			continue
		}

		idx, err := strconv.Atoi(core)
		if err != nil {
			continue
		}
		out = append(out, idx)
	}

	slices.Sort(out)
	return slices.Compact(out), nil
}

func (s *DirSource) LoadWorkers(ctx context.Context, idx int) ([]domain.Worker, error) {
	path := filepath.Join(s.Dir, fmt.Sprintf("%s%d%s", instancePrefix, idx, instanceSuffix))

	var workers []domain.Worker
	err := readRecords(path, 2, func(line int, f []string) error {
		loc, err := parseNode(f[0])
		if err != nil {
			return err
		}
		r, err := parseReal(f[1])
		if err != nil {
			return err
		}
		workers = append(workers, domain.Worker{Location: loc, Radius: r})
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load workers: instance %d: %w: %w", idx, ports.ErrInstanceNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("load workers: %w", err)
	}

	return workers, nil
}

func (s *DirSource) LoadRoute(ctx context.Context, idx int) (domain.Route, error) {
	path := filepath.Join(s.Dir, fmt.Sprintf("%s%d%s", solutionPrefix, idx, solutionSuffix))

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load route: instance %d: %w: %w", idx, ports.ErrInstanceNotFound, err)
	}
	if err != nil {
		return nil, fmt.Errorf("load route: read %q: %w", path, err)
	}

	route, err := ParseRoute(string(b))
	if err != nil {
		return nil, fmt.Errorf("load route %q: %w", path, err)
	}
	return route, nil
}

// ParseRoute splits text on commas, semicolons and whitespace and parses
// every token as a node id. An empty text yields an empty route.
func ParseRoute(text string) (domain.Route, error) {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	route := make(domain.Route, 0, len(tokens))
	for i, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("parse route: token #%d %q: %w", i+1, tok, err)
		}
		route = append(route, n)
	}
	return route, nil
}

// readRecords calls fn for each non-blank line of path, split into exactly
// want fields.
func readRecords(path string, want int, fn func(line int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	return scanRecords(f, path, want, fn)
}

func scanRecords(r io.Reader, name string, want int, fn func(line int, fields []string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(text, ",", " "))
		if len(fields) != want {
			return fmt.Errorf("%s:%d: expected %d fields, got %d", name, line, want, len(fields))
		}

		if err := fn(line, fields); err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %q: %w", name, err)
	}

	return nil
}

func parseNode(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid node id %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid node id %d: must be non-negative", n)
	}
	return n, nil
}

var errNonFinite = errors.New("value must be finite")

func parseReal(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("invalid number %q: %w", s, errNonFinite)
	}
	return v, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
