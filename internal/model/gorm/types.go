package gorm

import (
	"database/sql/driver"
	"fmt"

	"github.com/bytedance/sonic"
)

// Int64List ID列表，以JSON数组形式存入 json 列（兼容 mysql/pg）
type Int64List []int64

// Value 实现 driver.Valuer
func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		l = Int64List{}
	}
	b, err := sonic.Marshal([]int64(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner
func (l *Int64List) Scan(value interface{}) error {
	if value == nil {
		*l = Int64List{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported column type for Int64List: %T", value)
	}
	if len(data) == 0 {
		*l = Int64List{}
		return nil
	}
	var ids []int64
	if err := sonic.Unmarshal(data, &ids); err != nil {
		return err
	}
	*l = ids
	return nil
}

// Contains 判断列表中是否包含指定ID
func (l Int64List) Contains(id int64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Without 返回移除指定ID后的新列表，原列表不变
func (l Int64List) Without(id int64) Int64List {
	out := make(Int64List, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
