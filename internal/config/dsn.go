package config

import (
	"net"
	"net/url"
	"strconv"
)

// ConnectionString builds {protocol}://{user}:{password}@{host}:{port}/{dbname}
// with the password escaped. SQLite targets become sqlite://{database}.
func (t Target) ConnectionString(password string) string {
	if t.Protocol == ProtocolSQLite {
		return "sqlite://" + t.Database
	}

	u := url.URL{
		Scheme: t.Protocol,
		User:   url.UserPassword(t.User, password),
		Host:   net.JoinHostPort(t.Host, strconv.Itoa(t.Port)),
		Path:   "/" + t.Database,
	}
	return u.String()
}

// String describes the target without secrets, for status lines.
func (t Target) String() string {
	if t.Protocol == ProtocolSQLite {
		return "sqlite://" + t.Database
	}
	u := url.URL{
		Scheme: t.Protocol,
		User:   url.User(t.User),
		Host:   net.JoinHostPort(t.Host, strconv.Itoa(t.Port)),
		Path:   "/" + t.Database,
	}
	return u.String()
}
