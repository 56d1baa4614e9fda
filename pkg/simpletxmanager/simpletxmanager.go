package simpletxmanager

import (
	"context"
	"errors"
)

// ErrTransactionsUnsupported возвращается для операций, требующих транзакцию,
// когда соединение с БД идет через pooler в statement-режиме (BEGIN недоступен)
var ErrTransactionsUnsupported = errors.New("simpletxmanager: transactions are not supported by this database deployment")

// TransactionManager заглушка менеджера транзакций для деплоев без поддержки
// транзакций (например, pgbouncer в pool_mode=statement)
//
// Do выполняет fn как есть, без транзакции. Операции, которым транзакция
// необходима для корректности, получают явную ошибку вместо тихой деградации
type TransactionManager struct{}

// NewTransactionManager создает заглушку менеджера транзакций
func NewTransactionManager() *TransactionManager {
	return &TransactionManager{}
}

// Do выполняет fn без транзакции
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoReadOnly выполняет fn без транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// DoSerializable возвращает ErrTransactionsUnsupported
// Вызывающий код обязан показать пользователю, что нужно использовать
// нетранзакционный путь, а не выполнять проверки без изоляции
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return ErrTransactionsUnsupported
}
