package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// IsDuplicateKey 判断错误的“根”是不是MySQL的唯一键冲突
// 错误号 1062 就是 "Duplicate entry"，代表唯一索引拦下了一次重复插入
func IsDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
