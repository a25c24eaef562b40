package ident

import (
	"errors"
	"strconv"
)

// ErrInvalid 表示外部传入的ID格式不合法
var ErrInvalid = errors.New("无效的ID")

// Parse 校验并解析外部传入的ID（路径参数、查询参数）
// 合法的ID是正的十进制uint64，校验失败的ID不允许进入任何数据库查询
// 纯函数，无副作用
func Parse(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalid
	}
	return id, nil
}
