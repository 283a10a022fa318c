package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:          "成功",
	ErrUnknown:          "未知错误",
	ErrBind:             "请求参数绑定错误",
	ErrValidation:       "请求参数验证错误",
	ErrTokenInvalid:     "无效的认证令牌",
	ErrPermissionDenied: "权限不足",
	ErrTooManyRequests:  "请求频率过高",

	// 用户相关错误码
	ErrUserNotFound:          "用户不存在",
	ErrUserAlreadyExist:      "邮箱已注册",
	ErrUserPasswordIncorrect: "邮箱或密码错误",
	ErrUserRoleInvalid:       "角色无效",

	// 资产相关错误码
	ErrAssetNotFound:         "资产不存在",
	ErrAssetTypeInvalid:      "资产类别无效",
	ErrHealthScoreOutOfRange: "健康评分必须在0到100之间",
	ErrLocationInvalid:       "经纬度超出有效范围",

	// 告警相关错误码
	ErrAlertNotFound:      "告警不存在",
	ErrAlertStatusInvalid: "告警状态只能是pending或resolved",

	// 分析相关错误码
	ErrAnalysisNotFound: "分析记录不存在",
	ErrAnalysisFailed:   "分析执行失败",

	// 数据库相关错误码
	ErrDatabase:       "数据库错误",
	ErrRecordNotFound: "记录不存在",

	// 迁移相关错误码
	ErrMigrationFailed:  "迁移失败",
	ErrConnectionFailed: "连接失败",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:          StatusOK,
	ErrUnknown:          StatusInternalServerError,
	ErrBind:             StatusBadRequest,
	ErrValidation:       StatusBadRequest,
	ErrTokenInvalid:     StatusUnauthorized,
	ErrPermissionDenied: StatusForbidden,
	ErrTooManyRequests:  StatusTooManyRequests,

	// 用户相关错误码
	ErrUserNotFound:          StatusNotFound,
	ErrUserAlreadyExist:      StatusBadRequest,
	ErrUserPasswordIncorrect: StatusUnauthorized,
	ErrUserRoleInvalid:       StatusBadRequest,

	// 资产相关错误码
	ErrAssetNotFound:         StatusNotFound,
	ErrAssetTypeInvalid:      StatusBadRequest,
	ErrHealthScoreOutOfRange: StatusBadRequest,
	ErrLocationInvalid:       StatusBadRequest,

	// 告警相关错误码
	ErrAlertNotFound:      StatusNotFound,
	ErrAlertStatusInvalid: StatusBadRequest,

	// 分析相关错误码
	ErrAnalysisNotFound: StatusNotFound,
	ErrAnalysisFailed:   StatusInternalServerError,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,

	// 迁移相关错误码
	ErrMigrationFailed:  StatusInternalServerError,
	ErrConnectionFailed: StatusInternalServerError,
}

// GetMessage 获取错误码对应的消息
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "未知错误"
}

// GetStatus 获取错误码对应的HTTP状态码
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
