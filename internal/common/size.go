package common

import (
	"fmt"
	"math"
	"os"

	"github.com/dustin/go-humanize"
)

const (
	bytesPerKilobyteConstant  = 1024
	sizeTemplateConstant      = "~ %d KB"
	statErrorTemplateConstant = "unable to stat %s: %w"
)

// GetSize reports the size of the file at path as "~ N KB", rounding half to even.
func (toolkit *Toolkit) GetSize(path string) (string, error) {
	sizeInBytes, statError := fileSize(path)
	if statError != nil {
		return "", statError
	}
	kilobytes := math.RoundToEven(float64(sizeInBytes) / bytesPerKilobyteConstant)
	return fmt.Sprintf(sizeTemplateConstant, int64(kilobytes)), nil
}

// HumanSize reports the size of the file at path in IEC units, e.g. "1.5 MiB".
func (toolkit *Toolkit) HumanSize(path string) (string, error) {
	sizeInBytes, statError := fileSize(path)
	if statError != nil {
		return "", statError
	}
	return humanize.IBytes(uint64(sizeInBytes)), nil
}

func fileSize(path string) (int64, error) {
	fileInfo, statError := os.Stat(path)
	if statError != nil {
		return 0, fmt.Errorf(statErrorTemplateConstant, path, statError)
	}
	return fileInfo.Size(), nil
}
