package scene

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/scenegraph/internal/core/models"
)

// Fingerprint hashes the JSON form of info. Map keys are encoded in sorted
// order, so equal scenes hash equal regardless of how their data maps were built.
func Fingerprint(info *models.Info) (uint64, error) {
	raw, err := json.Marshal(info)
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(raw), nil
}
