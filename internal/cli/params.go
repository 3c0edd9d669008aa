package cli

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// loadParams decodes a YAML or JSON document into target. A path of "-" reads
// from stdin. Unknown keys are rejected so typos do not silently drop fields.
func loadParams(stdin io.Reader, path string, target interface{}) error {
	if path == "" {
		return errors.New("a params file is required (--params)")
	}

	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to read params from %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.Errorf("params file %s is empty", path)
		}
		return errors.Wrapf(err, "invalid params in %s", path)
	}
	return nil
}
