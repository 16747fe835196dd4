// Package persist writes and loads the save files: one JSON document
// per character plus one account-level document for achievements and
// the haven. Writes are atomic (temp file + rename); loads tolerate
// missing fields so older saves keep working.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/udisondev/emberfall/internal/game/achievement"
	"github.com/udisondev/emberfall/internal/game/haven"
	"github.com/udisondev/emberfall/internal/model"
)

// DocVersion marks the save format; loaders accept older versions and
// fill absent fields with defaults.
const DocVersion = 1

// CharacterDoc is the on-disk form of one character.
type CharacterDoc struct {
	Version      int              `json:"version"`
	Character    *model.Character `json:"character"`
	LastSaveTime int64            `json:"last_save_time"`

	// RNGState resumes the deterministic stream across sessions.
	RNGState uint64 `json:"rng_state,omitempty"`
}

// AccountDoc is the on-disk form of the account-level state.
type AccountDoc struct {
	Version      int                `json:"version"`
	Achievements *achievement.State `json:"achievements"`
	Haven        *haven.State       `json:"haven"`
}

// accountFile is the fixed account document name inside a save dir.
const accountFile = "account.json"

// writeAtomic writes data to path via a temp file in the same
// directory and a rename, so a crash never leaves a torn save.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".save-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp save file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing save: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("committing save: %w", err)
	}
	return nil
}

// CharacterPath returns the save path for a character name.
func CharacterPath(dir, name string) string {
	return filepath.Join(dir, strings.ToLower(name)+".json")
}

// SaveCharacter persists one character. now becomes last_save_time.
func SaveCharacter(dir string, ch *model.Character, rngState uint64, now time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save dir: %w", err)
	}

	ch.Progress.SyncLists()
	doc := CharacterDoc{
		Version:      DocVersion,
		Character:    ch,
		LastSaveTime: now.Unix(),
		RNGState:     rngState,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding character %q: %w", ch.Name, err)
	}
	return writeAtomic(CharacterPath(dir, ch.Name), data)
}

// LoadCharacter reads a character save. Missing newer fields load as
// defaults; the derived sets are rebuilt from their lists.
func LoadCharacter(path string) (*model.Character, uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("reading save %s: %w", path, err)
	}
	var doc CharacterDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("decoding save %s: %w", path, err)
	}
	if doc.Character == nil {
		return nil, 0, fmt.Errorf("save %s holds no character", path)
	}

	ch := doc.Character
	ch.Progress.RestoreSets()
	if ch.Progress.CurrentZone < 1 {
		ch.Progress.CurrentZone = 1
	}
	if ch.Progress.CurrentSubzone < 1 {
		ch.Progress.CurrentSubzone = 1
	}
	if ch.Level < 1 {
		ch.Level = 1
	}
	if ch.Fishing.Rank < 1 {
		ch.Fishing.Rank = 1
	}
	if ch.Attributes.Total() == 0 {
		ch.Attributes = model.NewBaseAttributes()
	}
	ch.LastSaveTime = time.Unix(doc.LastSaveTime, 0)
	return ch, doc.RNGState, nil
}

// SaveAccount persists achievements and haven.
func SaveAccount(dir string, ach *achievement.State, hv *haven.State) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating save dir: %w", err)
	}
	ach.SyncList()
	doc := AccountDoc{Version: DocVersion, Achievements: ach, Haven: hv}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding account: %w", err)
	}
	return writeAtomic(filepath.Join(dir, accountFile), data)
}

// LoadAccount reads the account document, returning fresh state when
// the file does not exist yet.
func LoadAccount(dir string) (*achievement.State, *haven.State, error) {
	data, err := os.ReadFile(filepath.Join(dir, accountFile))
	if errors.Is(err, fs.ErrNotExist) {
		return achievement.NewState(), &haven.State{}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading account save: %w", err)
	}
	var doc AccountDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decoding account save: %w", err)
	}
	if doc.Achievements == nil {
		doc.Achievements = achievement.NewState()
	}
	doc.Achievements.RestoreSet()
	if doc.Haven == nil {
		doc.Haven = &haven.State{}
	}
	return doc.Achievements, doc.Haven, nil
}

// ListCharacters returns the character names with saves in dir, in
// directory order.
func ListCharacters(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}
	var names []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == accountFile || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".json"))
	}
	return names, nil
}

// CreateCharacter validates the name, rejects duplicates and writes the
// initial save.
func CreateCharacter(dir, name string, now time.Time) (*model.Character, error) {
	if err := model.ValidateName(name); err != nil {
		return nil, err
	}
	if _, err := os.Stat(CharacterPath(dir, name)); err == nil {
		return nil, model.ErrNameTaken
	}
	ch, err := model.NewCharacter(name)
	if err != nil {
		return nil, err
	}
	if err := SaveCharacter(dir, ch, 0, now); err != nil {
		return nil, err
	}
	ch.LastSaveTime = now
	return ch, nil
}
