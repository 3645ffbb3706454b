package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	goverrors "github.com/nsd23387/campaign-governance/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a snapshot file from disk, decodes it, and validates it. The
// file extension selects the codec: .yaml and .yml decode as YAML,
// everything else as JSON.
func Load(path string) (*Snapshot, error) {
	var snap Snapshot
	if err := loadInto(path, &snap); err != nil {
		return nil, err
	}
	if err := validateDocument(&snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// LoadRecords reads a bare records file for standalone classification.
func LoadRecords(path string) ([]Metric, error) {
	var file RecordsFile
	if err := loadInto(path, &file); err != nil {
		return nil, err
	}
	if err := validateDocument(&file); err != nil {
		return nil, err
	}
	return file.Records, nil
}

func loadInto(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return goverrors.NewParseError(path, 0, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, target); err != nil {
			return goverrors.NewParseError(path, extractLine(err), err)
		}
	default:
		if err := json.Unmarshal(data, target); err != nil {
			return goverrors.NewParseError(path, 0, err)
		}
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
