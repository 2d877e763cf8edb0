package errors

// ErrCode 业务错误码类型
type ErrCode int

const (
	// 通用错误 1000-1999
	ErrInvalidParameter ErrCode = 1001 // 参数错误
	ErrUnauthorized     ErrCode = 1002 // 未授权
	ErrInternalError    ErrCode = 1003 // 内部错误
	ErrNotFound         ErrCode = 1004 // 资源未找到
	ErrAlreadyExists    ErrCode = 1005 // 资源已存在
	ErrOperationFailed  ErrCode = 1006 // 操作失败

	// 标记回答相关 3000-3999
	ErrFlaggedNotFound       ErrCode = 3001 // 标记回答未找到
	ErrFlaggedStatusConflict ErrCode = 3002 // 标记回答状态已变更
	ErrFlaggedTerminal       ErrCode = 3003 // 标记回答已终结，不允许继续编辑

	// 文档相关 4000-4999
	ErrDocumentNotFound  ErrCode = 4001 // 文档未找到
	ErrDocumentEmpty     ErrCode = 4002 // 文档内容为空
	ErrDocumentNotLinked ErrCode = 4003 // 文档不属于该标记回答
	ErrFileSizeExceeded  ErrCode = 4004 // 文件大小超限
	ErrFileUploadFailed  ErrCode = 4005 // 文件上传失败
	ErrFileDeleteFailed  ErrCode = 4006 // 文件删除失败
	ErrFileTypeInvalid   ErrCode = 4007 // 文件类型不支持
	ErrVideoLinkInvalid  ErrCode = 4008 // 视频链接无效

	// 数据库相关 6000-6999
	ErrDatabaseQuery  ErrCode = 6001 // 数据库查询失败
	ErrDatabaseInsert ErrCode = 6002 // 数据库插入失败
	ErrDatabaseUpdate ErrCode = 6003 // 数据库更新失败
	ErrDatabaseDelete ErrCode = 6004 // 数据库删除失败
	ErrDatabaseInit   ErrCode = 6005 // 数据库初始化失败

	// RAG worker 相关 8000-8999
	ErrWorkerUnreachable ErrCode = 8001 // worker 服务不可达
	ErrWorkerRejected    ErrCode = 8002 // worker 拒绝请求

	// 导出相关 9000-9999
	ErrExportTypeInvalid ErrCode = 9001 // 导出类型不支持
	ErrExportFailed      ErrCode = 9002 // 导出失败
)

// HTTPStatusCode 返回错误码对应的HTTP状态码
func (e ErrCode) HTTPStatusCode() int {
	switch {
	case e >= 1001 && e <= 1999:
		// 通用错误
		switch e {
		case ErrInvalidParameter:
			return 400
		case ErrUnauthorized:
			return 401
		case ErrNotFound:
			return 404
		case ErrAlreadyExists:
			return 409
		default:
			return 500
		}
	case e >= 3000 && e <= 3999:
		// 标记回答相关错误
		switch e {
		case ErrFlaggedNotFound:
			return 404
		case ErrFlaggedStatusConflict, ErrFlaggedTerminal:
			return 409
		default:
			return 500
		}
	case e >= 4000 && e <= 4999:
		// 文档相关错误
		switch e {
		case ErrDocumentNotFound, ErrDocumentNotLinked:
			return 404
		case ErrDocumentEmpty, ErrFileTypeInvalid, ErrVideoLinkInvalid:
			return 400
		case ErrFileSizeExceeded:
			return 413
		default:
			return 500
		}
	case e >= 9000 && e <= 9999:
		// 导出相关错误
		if e == ErrExportTypeInvalid {
			return 400
		}
		return 500
	default:
		return 500
	}
}
