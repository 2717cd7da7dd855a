package sequence

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one named entry of a sequence file. Bases are raw text with
// line breaks removed; they are validated only when analyzed.
type Record struct {
	ID          string
	Description string
	Bases       string
}

// ReadFile reads sequences from path, transparently decompressing
// ".gz" files. See Read for the accepted formats.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sequence file: %w", err)
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open gzip reader: %w", err)
		}
		defer gz.Close()
		reader = gz
	}

	records, err := Read(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Read parses FASTA content. Input without a leading '>' header is taken
// as a single unnamed sequence spread over any number of lines. Blank
// lines and ';' comment lines are skipped.
func Read(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	var (
		records []Record
		current *Record
		bases   strings.Builder
	)
	flush := func() {
		if current != nil {
			current.Bases = bases.String()
			records = append(records, *current)
		}
		bases.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "", strings.HasPrefix(line, ";"):
			continue
		case strings.HasPrefix(line, ">"):
			flush()
			id, desc := parseHeader(line)
			current = &Record{ID: id, Description: desc}
		default:
			if current == nil {
				current = &Record{}
			}
			bases.WriteString(strings.Join(strings.Fields(line), ""))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan sequence file: %w", err)
	}
	flush()

	return records, nil
}

// parseHeader splits ">id description" into its parts. Pipe-delimited
// headers (">id|field|field") keep the first field as the ID.
func parseHeader(header string) (id, desc string) {
	header = strings.TrimSpace(strings.TrimPrefix(header, ">"))
	id, desc, _ = strings.Cut(header, " ")
	if i := strings.Index(id, "|"); i != -1 {
		id = id[:i]
	}
	return id, strings.TrimSpace(desc)
}
