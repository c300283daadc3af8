package api

import (
	"context"
	"errors"
)

type keyType string

const adminUserKey keyType = "adminUser"

// ctxWithAdminUser records the authenticated admin username on the context
func ctxWithAdminUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminUserKey, username)
}

// ctxGetAdminUser retrieves the authenticated admin username from the context
func ctxGetAdminUser(ctx context.Context) (string, error) {
	ctxValue := ctx.Value(adminUserKey)
	if ctxValue == nil {
		return "", errors.New("no authenticated user in context")
	}
	username, ok := ctxValue.(string)
	if !ok {
		return "", errors.New("value is not of type `string`")
	}
	return username, nil
}
