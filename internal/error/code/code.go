package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusForbidden - 403: 禁止访问.
	StatusForbidden = 403
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 令牌无效.
	ErrTokenInvalid
	// ErrPermissionDenied - 403: 权限不足.
	ErrPermissionDenied
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 用户相关错误码 (101xxx).
const (
	// ErrUserNotFound - 404: 用户不存在.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 400: 邮箱已注册.
	ErrUserAlreadyExist
	// ErrUserPasswordIncorrect - 401: 邮箱或密码错误.
	ErrUserPasswordIncorrect
	// ErrUserRoleInvalid - 400: 角色无效.
	ErrUserRoleInvalid
)

// 资产相关错误码 (102xxx).
const (
	// ErrAssetNotFound - 404: 资产不存在.
	ErrAssetNotFound int = iota + 102000
	// ErrAssetTypeInvalid - 400: 资产类别无效.
	ErrAssetTypeInvalid
	// ErrHealthScoreOutOfRange - 400: 健康评分超出范围.
	ErrHealthScoreOutOfRange
	// ErrLocationInvalid - 400: 经纬度无效.
	ErrLocationInvalid
)

// 告警相关错误码 (103xxx).
const (
	// ErrAlertNotFound - 404: 告警不存在.
	ErrAlertNotFound int = iota + 103000
	// ErrAlertStatusInvalid - 400: 告警状态无效.
	ErrAlertStatusInvalid
)

// 分析相关错误码 (104xxx).
const (
	// ErrAnalysisNotFound - 404: 分析记录不存在.
	ErrAnalysisNotFound int = iota + 104000
	// ErrAnalysisFailed - 500: 分析执行失败.
	ErrAnalysisFailed
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)

// 迁移相关错误码 (109xxx).
const (
	// ErrMigrationFailed - 500: 迁移失败.
	ErrMigrationFailed int = iota + 109000
	// ErrConnectionFailed - 500: 连接失败.
	ErrConnectionFailed
)
