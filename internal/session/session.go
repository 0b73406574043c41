// Package session tracks who is using the application. An empty user name
// means guest mode: nothing is persisted.
package session

import "strings"

type Session struct {
	userName string
}

func New(userName string) *Session {
	return &Session{userName: strings.TrimSpace(userName)}
}

func (s *Session) UserName() string {
	if s == nil {
		return ""
	}
	return s.userName
}

func (s *Session) LoggedIn() bool { return s.UserName() != "" }

func (s *Session) LogIn(userName string) { s.userName = strings.TrimSpace(userName) }

func (s *Session) LogOut() { s.userName = "" }
