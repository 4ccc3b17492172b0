package domain

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/zerr"
)

// Checksums maps archive file names to their lowercase hex SHA-256 digests.
type Checksums map[string]string

// ParseChecksums reads a SHASUMS256.txt listing ("<hex>  <file>" per line).
// Malformed lines are ignored; a binary marker ('*') before the file name is stripped.
func ParseChecksums(r io.Reader) (Checksums, error) {
	sums := make(Checksums)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		sums[strings.TrimPrefix(fields[1], "*")] = strings.ToLower(fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read checksums")
	}
	return sums, nil
}

// Lookup returns the digest published for file.
func (c Checksums) Lookup(file string) (string, error) {
	sum, ok := c[file]
	if !ok {
		return "", zerr.With(ErrChecksumNotFound, "file", file)
	}
	return sum, nil
}
