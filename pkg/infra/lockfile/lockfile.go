package lockfile

import (
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/m-mizutani/lockdiff/pkg/domain/interfaces"
	"github.com/m-mizutani/lockdiff/pkg/domain/model"
	"github.com/m-mizutani/lockdiff/pkg/domain/types"
)

type parser struct{}

// New creates a parser for poetry.lock content
func New() interfaces.LockfileParser {
	return &parser{}
}

// document mirrors the TOML surface of poetry.lock that the diff needs:
// the [[package]] array with its name and version keys. Everything else
// in the file is ignored.
type document struct {
	Packages []packageEntry `toml:"package"`
}

type packageEntry struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
}

// Parse extracts the package list from raw poetry.lock bytes. Entries are
// returned in file order. A file without any [[package]] entry is valid and
// yields an empty list.
func (p *parser) Parse(data []byte) ([]model.Package, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, goerr.Wrap(types.ErrLockfileMalformed, decodeErr.Error(),
				goerr.V("row", row),
				goerr.V("column", col),
			)
		}
		return nil, goerr.Wrap(types.ErrLockfileMalformed, err.Error())
	}

	packages := make([]model.Package, 0, len(doc.Packages))
	for i, entry := range doc.Packages {
		// Name and version must both be present: the diff encodes absence
		// as an empty version string, so empty values cannot pass through.
		if entry.Name == "" || entry.Version == "" {
			return nil, goerr.Wrap(types.ErrLockfileMalformed, "package entry missing name or version",
				goerr.V("index", i),
				goerr.V("name", entry.Name),
				goerr.V("version", entry.Version),
			)
		}
		packages = append(packages, model.Package{
			Name:    entry.Name,
			Version: entry.Version,
		})
	}

	return packages, nil
}
