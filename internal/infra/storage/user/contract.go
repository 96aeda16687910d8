package user

import "github.com/m04kA/arena-booking/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
