package models

// Credential представляет запись локального хранилища пользователей (users.json)
// Ключ записи в хранилище - Username
type Credential struct {
	Username     string `json:"username"`                // username на платформе
	Token        string `json:"token"`                   // bearer token
	UserID       string `json:"id,omitempty"`            // идентификатор пользователя на платформе
	DisplayName  string `json:"name,omitempty"`          // отображаемое имя
	AvatarPath   string `json:"avatar,omitempty"`        // путь к локальному файлу аватара
	CurrencyCode string `json:"currency_code,omitempty"` // ISO код валюты
}

// User is the read view of the current identity. The zero value is the anonymous user,
// so callers can read Username without a nil check.
type User struct {
	Credential
}

// Anonymous reports whether no platform identity is attached.
func (u User) Anonymous() bool {
	return u.Username == ""
}

// CurrencySymbol returns the symbol for the user's currency, or "" when unknown.
func (u User) CurrencySymbol() string {
	symbol, _ := CurrencySymbol(u.CurrencyCode)
	return symbol
}

// AccountURL returns the account settings page on the platform's web client.
func (u User) AccountURL(clientURL string) string {
	return clientURL + "/account/general"
}

func (u User) String() string {
	if u.Anonymous() {
		return "<anonymous>"
	}
	return u.Username
}
