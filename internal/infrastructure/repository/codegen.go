// Package repository implements the domain repositories on gorm.
package repository

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// nextCode produces the next sequential code for a prefix, e.g. TIC-8
// when TIC-7 is the highest stored. The numeric suffix is parsed in Go
// so the scan works the same on MySQL and SQLite. Callers must run this
// inside the same transaction as the insert.
func nextCode(tx *gorm.DB, model interface{}, column, prefix string) (string, error) {
	var codes []string
	if err := tx.Model(model).
		Where(column+" LIKE ?", prefix+"-%").
		Pluck(column, &codes).Error; err != nil {
		return "", fmt.Errorf("failed to scan %s codes: %w", prefix, err)
	}

	max := 0
	for _, code := range codes {
		n, err := strconv.Atoi(strings.TrimPrefix(code, prefix+"-"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return fmt.Sprintf("%s-%d", prefix, max+1), nil
}
