package pixorder

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Save writes the ranking to a JSON file.
func (r *Ranking) Save(path string) error {
	data, err := json.Marshal(r)
	if err != nil {
		return errors.Wrap(err, "save ranking")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "save ranking")
	}
	return nil
}

// LoadRanking reads a ranking written by Save.
func LoadRanking(path string) (*Ranking, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load ranking")
	}
	res := &Ranking{}
	if err := json.Unmarshal(data, res); err != nil {
		return nil, errors.Wrap(err, "load ranking")
	}
	return res, nil
}
