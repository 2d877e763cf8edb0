package auth

import (
	"context"

	"github.com/coaching-ai/coachadmin/core/errors"
	"github.com/coaching-ai/coachadmin/internal/cache"
	"github.com/coaching-ai/coachadmin/internal/dao"
	gormModel "github.com/coaching-ai/coachadmin/internal/model/gorm"
)

type ctxKey string

const operatorCtxKey ctxKey = "auth.operator"

// ResolveOperator 根据 bearer token 解析操作员，优先走缓存
func ResolveOperator(ctx context.Context, token string) (*gormModel.Operator, error) {
	if token == "" {
		return nil, errors.New(errors.ErrUnauthorized, "missing token")
	}

	if operator, ok := cache.GetOperator(token); ok {
		return operator, nil
	}

	operator, err := dao.Operator.GetByToken(ctx, token)
	if err != nil {
		return nil, errors.Newf(errors.ErrDatabaseQuery, "failed to resolve operator: %v", err)
	}
	if operator == nil {
		return nil, errors.New(errors.ErrUnauthorized, "invalid token")
	}

	cache.SetOperator(token, operator)
	return operator, nil
}

// WithOperator 把操作员挂到请求上下文
func WithOperator(ctx context.Context, operator *gormModel.Operator) context.Context {
	return context.WithValue(ctx, operatorCtxKey, operator)
}

// OperatorFromCtx 从上下文取出当前操作员，未认证的请求返回nil
func OperatorFromCtx(ctx context.Context) *gormModel.Operator {
	if operator, ok := ctx.Value(operatorCtxKey).(*gormModel.Operator); ok {
		return operator
	}
	return nil
}

// OperatorID 取当前操作员ID，拿不到时返回空串
func OperatorID(ctx context.Context) string {
	if operator := OperatorFromCtx(ctx); operator != nil {
		return operator.ID
	}
	return ""
}
