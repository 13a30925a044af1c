package ingestion

import (
	"code.sajari.com/docconv"
)

// readConverted handles legacy word-processor formats (.doc, .rtf, .odt).
// .doc and .rtf need the wv and unrtf tools installed.
func readConverted(path string) (string, error) {
	res, err := docconv.ConvertPath(path)
	if err != nil {
		return "", err
	}
	return res.Body, nil
}
