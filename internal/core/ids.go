package core

// ids.go implements the identifier gate shared by the fixed-template routes.
//
// The backing file is a single line of ids separated by ';'. It is read on
// every call so an operator can edit it without restarting the server.

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/JonMunkholm/nftmeta/internal/logging"
)

// DefaultIdentifiers is written to the ids file when it does not exist.
const DefaultIdentifiers = "nft001;nft002;nft003;mystery001;box001"

// IdentifierSeparator separates ids in the ids file.
const IdentifierSeparator = ";"

// IdentifierStore reads the list of valid NFT ids from a flat file.
type IdentifierStore struct {
	path string
}

// NewIdentifierStore returns a store backed by the file at path.
func NewIdentifierStore(path string) *IdentifierStore {
	return &IdentifierStore{path: path}
}

// Path returns the backing file path.
func (s *IdentifierStore) Path() string {
	return s.path
}

// Load returns the current ids in file order, trimmed, with empty entries
// dropped. A missing file is first created with DefaultIdentifiers.
// File errors are logged and produce an empty, non-nil slice.
func (s *IdentifierStore) Load(ctx context.Context) []string {
	logger := logging.WithFields(ctx, "file", s.path)

	if err := s.ensureExists(ctx); err != nil {
		logger.Error("failed to create ids file", "error", err)
		return []string{}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		logger.Error("failed to read ids file", "error", err)
		return []string{}
	}

	return splitIdentifiers(string(data))
}

// IsValid reports whether id is one of the loaded ids.
// Matching is exact and case-sensitive.
func (s *IdentifierStore) IsValid(ctx context.Context, id string) bool {
	return slices.Contains(s.Load(ctx), id)
}

// ensureExists writes DefaultIdentifiers when the file is missing.
func (s *IdentifierStore) ensureExists(ctx context.Context) error {
	_, err := os.Stat(s.path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(s.path, []byte(DefaultIdentifiers), 0o644); err != nil {
		return err
	}
	logging.WithFields(ctx, "file", s.path).Info("ids file created with default ids")
	return nil
}

// splitIdentifiers splits raw file content into trimmed, non-empty ids.
func splitIdentifiers(content string) []string {
	parts := strings.Split(content, IdentifierSeparator)
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = trimIdentifier(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// trimIdentifier strips whitespace and byte order marks from both ends.
func trimIdentifier(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}
