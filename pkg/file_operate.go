package pkg

import (
	"os"

	"github.com/pkg/errors"
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// WriteFile 将内容写入文件，文件存在时覆盖
func WriteFile(filePath string, data []byte) error {
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return errors.Wrapf(err, "write file %s", filePath)
	}
	return nil
}
