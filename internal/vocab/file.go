package vocab

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func readYamlFile[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		return result, fmt.Errorf("yaml.NewDecoder().Decode(%s)> %w", path, err)
	}
	return result, nil
}

func writeYamlFile[T any](path string, data T) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("yaml.NewEncoder().Encode(%s)> %w", path, err)
	}
	return encoder.Close()
}

func isYamlFile(path string) bool {
	switch filepath.Ext(path) {
	case ".yml", ".yaml":
		return true
	}
	return false
}

// walkYamlFiles calls fn for every YAML file under dir, in lexical order.
func walkYamlFiles(dir string, fn func(path string) error) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isYamlFile(path) {
			return nil
		}
		return fn(path)
	})
}
