package admin

// ControllerV1 后台管理接口 v1
type ControllerV1 struct{}

func NewV1() *ControllerV1 {
	return &ControllerV1{}
}
