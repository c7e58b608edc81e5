package dlang

import (
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// packFile is the on-disk shape of a pack, shared by the YAML and TOML decoders.
type packFile struct {
	Key           string       `yaml:"key" toml:"key"`
	Months        []string     `yaml:"months" toml:"months"`
	MonthsShort   []string     `yaml:"months_short" toml:"months_short"`
	Weekdays      []string     `yaml:"weekdays" toml:"weekdays"`
	WeekdaysShort []string     `yaml:"weekdays_short" toml:"weekdays_short"`
	Relative      relativeFile `yaml:"relative" toml:"relative"`
}

type relativeFile struct {
	Minute string `yaml:"minute" toml:"minute"`
	Hour   string `yaml:"hour" toml:"hour"`
	Day    string `yaml:"day" toml:"day"`
	Month  string `yaml:"month" toml:"month"`
	Year   string `yaml:"year" toml:"year"`
	Less   string `yaml:"less" toml:"less"`
	Future string `yaml:"future" toml:"future"`
	Past   string `yaml:"past" toml:"past"`
}

func copyNames(dst []string, field string, src []string) error {
	if len(src) != len(dst) {
		return errors.Errorf("%s: want %d entries, got %d", field, len(dst), len(src))
	}
	copy(dst, src)
	return nil
}

func (raw packFile) pack(defaultKey string) (Pack, error) {
	if raw.Key == "" {
		raw.Key = defaultKey
	}
	p := Pack{
		Key: raw.Key,
		Relative: Relative{
			Minute: raw.Relative.Minute,
			Hour:   raw.Relative.Hour,
			Day:    raw.Relative.Day,
			Month:  raw.Relative.Month,
			Year:   raw.Relative.Year,
			Less:   raw.Relative.Less,
			Direction: Direction{
				Future: raw.Relative.Future,
				Past:   raw.Relative.Past,
			},
		},
	}
	for _, err := range []error{
		copyNames(p.Months[:], "months", raw.Months),
		copyNames(p.MonthsShort[:], "months_short", raw.MonthsShort),
		copyNames(p.Weekdays[:], "weekdays", raw.Weekdays),
		copyNames(p.WeekdaysShort[:], "weekdays_short", raw.WeekdaysShort),
	} {
		if err != nil {
			return Pack{}, errors.Wrapf(ErrInvalidPack, "%q: %v", raw.Key, err)
		}
	}
	if err := p.Validate(); err != nil {
		return Pack{}, err
	}
	return p, nil
}

// ParseYAML decodes a language pack from YAML:
//
//	key: en
//	months: [January, February, ...]       # 12 entries
//	months_short: [Jan, Feb, ...]          # 12 entries
//	weekdays: [Sunday, Monday, ...]        # 7 entries, Sunday first
//	weekdays_short: [Sun, Mon, ...]        # 7 entries
//	relative:
//	  minute: minute
//	  hour: hour
//	  day: day
//	  month: month
//	  year: year
//	  less: less than a minute
//	  future: in
//	  past: ago
//
// The result has been validated.
func ParseYAML(data []byte) (Pack, error) {
	return parseYAML(data, "")
}

func parseYAML(data []byte, defaultKey string) (Pack, error) {
	var raw packFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Pack{}, errors.Wrapf(ErrInvalidPack, "yaml: %v", err)
	}
	return raw.pack(defaultKey)
}

// ParseTOML decodes a language pack from TOML.  The keys are the same as for ParseYAML, with
// the relative vocabulary in a [relative] table.
func ParseTOML(data []byte) (Pack, error) {
	return parseTOML(data, "")
}

func parseTOML(data []byte, defaultKey string) (Pack, error) {
	var raw packFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Pack{}, errors.Wrapf(ErrInvalidPack, "toml: %v", err)
	}
	return raw.pack(defaultKey)
}

var parsers = map[string]func([]byte, string) (Pack, error){ //nolint:gochecknoglobals // read-only
	".yaml": parseYAML,
	".yml":  parseYAML,
	".toml": parseTOML,
}

// IsPackFile reports whether LoadFS would read a file with this name.
func IsPackFile(name string) bool {
	_, ok := parsers[strings.ToLower(path.Ext(name))]
	return ok
}

// LoadFS registers every *.yaml, *.yml, or *.toml file in fsys as a language pack.  A file that
// leaves "key" empty is registered under its base name, so "fr.yaml" needs no key of its own.
func (r *Registry) LoadFS(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		parse, ok := parsers[strings.ToLower(path.Ext(filePath))]
		if !ok {
			return nil
		}

		data, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return errors.Wrapf(err, "reading %q", filePath)
		}
		p, err := parse(data, strings.TrimSuffix(path.Base(filePath), path.Ext(filePath)))
		if err != nil {
			return errors.Wrapf(err, "parsing %q", filePath)
		}
		return r.Register(p)
	})
}
