// Package iocli абстрагирует ввод и вывод консольного клиента
package iocli

//go:generate moq -out io_mock.go . IO

// IO консольный ввод-вывод. Реализует io.Writer, поэтому годится как вывод cobra.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	ReadPassword(prompt string) (string, error)
	Write(p []byte) (n int, err error)
}
