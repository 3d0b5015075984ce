package display

import (
	"fmt"
	"runtime/debug"

	"github.com/terror/arrg/errors"
	"github.com/terror/arrg/schema"
)

// BuildVersion returns the version line for an application schema, e.g.
// "mytool v1.2.3". When the schema declares no version the module version
// is inferred from build metadata.
func BuildVersion(cmd *schema.Command) (string, error) {
	version := cmd.Version()

	if version == "" {
		inferred, err := inferVersion()
		if err != nil {
			return "No version specified", nil
		}
		version = inferred
	}

	name := cmd.Name()
	if name != "" {
		name = name + " "
	}

	return fmt.Sprintf("%sv%s", name, version), nil
}

// inferVersion attempts to infer the user's module version from build info.
func inferVersion() (string, error) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", errors.NewParseError("unable to read build info")
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version, nil
	}

	return "", errors.NewParseError("no version info found in build metadata")
}
