package enum

/*
digStatus挖掘任务状态：
DIG_EXEC 挖掘中
DIG_FINISH 挖掘完成
DIG_FAIL 挖掘失败
*/

const (
	DIG_EXEC   = "DIG_EXEC"
	DIG_FINISH = "DIG_FINISH"
	DIG_FAIL   = "DIG_FAIL"
)

// DigStatusFromErr 按任务结果转状态
func DigStatusFromErr(err error) string {
	if err != nil {
		return DIG_FAIL
	}
	return DIG_FINISH
}

// IsFinished 任务是否已经结束(成功或失败)
func IsFinished(s string) bool {
	return s == DIG_FINISH || s == DIG_FAIL
}
