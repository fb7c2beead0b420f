package utils

import (
	"fmt"
)

type ServiceError struct {
	Code uint32
	Msg  string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("ServiceError: code=%d, msg=%s", e.Code, e.Msg)
}

var (
	// business error code: [500000, 600000)
	ErrOpenCsv        = &ServiceError{500001, "open csv error"}
	ErrReadCsv        = &ServiceError{500002, "read csv error"}
	ErrWrongDataType  = &ServiceError{500003, "wrong data type"}
	ErrEmptyPointer   = &ServiceError{500004, "pointer is nil"}
	ErrParameter      = &ServiceError{500005, "invalid parameter"}
	ErrRaggedRow      = &ServiceError{500006, "transaction rows have different widths"}
	ErrDuplicateLabel = &ServiceError{500007, "duplicate attribute label"}

	// 阈值参数校验错误: [500100, 500200)
	ErrThresholdBothSet    = &ServiceError{500100, "minFrequency and minSupport cannot both be set"}
	ErrThresholdNoneSet    = &ServiceError{500101, "one of minFrequency and minSupport must be set"}
	ErrFrequencyOutOfRange = &ServiceError{500102, "minFrequency must be in [0, 1]"}
	ErrSupportNegative     = &ServiceError{500103, "minSupport must be >= 0"}
	ErrUnknownEncoding     = &ServiceError{500104, "unknown itemset encoding"}
	ErrBadFilterExpression = &ServiceError{500105, "invalid result filter expression"}
)
