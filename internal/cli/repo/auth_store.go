package repo

// AuthStore описывает хранилище auth-токена и контекста пользователя (последний логин) на клиенте.
type AuthStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
	SaveLogin(login string) error
	LoadLogin() (string, error)
}
