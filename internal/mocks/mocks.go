// Package mocks моки зависимостей для тестов.
package mocks

//go:generate mockgen -destination=readiness_mock.go -package=mocks -mock_names=Readiness=ReadinessMock github.com/sirkon/ulib/internal/selector Readiness
//go:generate mockgen -destination=writer_mock.go -package=mocks -mock_names=Writer=WriterMock io Writer
