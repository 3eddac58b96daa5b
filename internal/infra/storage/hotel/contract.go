package hotel

import "github.com/m04kA/SMC-CulturalTours/pkg/dbmetrics"

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor
