package backup

import "errors"

var (
	// ErrMalformed возвращается для файла, который нельзя импортировать
	ErrMalformed = errors.New("malformed backup")
	// ErrWrongPassphrase возвращается, если пароль не подходит к зашифрованной копии
	ErrWrongPassphrase = errors.New("wrong passphrase")
	// ErrPassphraseRequired возвращается, если копия зашифрована, а пароль не задан
	ErrPassphraseRequired = errors.New("backup is sealed, passphrase required")
)
