package util

import (
	"fmt"
	"os"
)

func GetTempDir() string {
	return fmt.Sprintf("%s/certify", os.TempDir())
}
