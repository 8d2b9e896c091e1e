package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 业务错误
var (
	ErrInvalidParams    = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
	ErrInvalidOrderData = NewErrno(codes.InvalidArgument, errors.New("invalid order data"))
	ErrUpdate           = NewErrno(codes.InvalidArgument, errors.New("update failed"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
)
