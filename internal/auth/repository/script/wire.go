package script

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain"
)

// Spreadsheet cells do not preserve the string/number distinction, so PINs
// like "042137" may come back as numbers and edit counters as "" or a float.
// The flex types absorb that on decode.

type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}

	if string(b) == "null" {
		*s = ""
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

type flexInt int

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		*i = 0
	case float64:
		*i = flexInt(int(t))
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			*i = 0
			return nil
		}
		n, err := strconv.Atoi(t)
		if err != nil {
			return fmt.Errorf("invalid numeric field %q", t)
		}
		*i = flexInt(n)
	default:
		return fmt.Errorf("invalid numeric field of type %T", v)
	}

	return nil
}

type wireDatabase struct {
	Name      string  `json:"name"`
	ScriptURL string  `json:"scriptUrl"`
	Token     string  `json:"token"`
	EditCount flexInt `json:"editCount"`
}

type wireUser struct {
	Email     string         `json:"email"`
	Password  flexString     `json:"password"`
	PIN       flexString     `json:"pin"`
	EditCount flexInt        `json:"editCount"`
	Databases []wireDatabase `json:"databases"`
	CreatedAt flexString     `json:"createdAt"`
}

func (u *wireUser) toDomain() *domain.User {
	databases := make([]domain.DatabaseRegistration, len(u.Databases))
	for i, db := range u.Databases {
		databases[i] = domain.DatabaseRegistration{
			Name:      db.Name,
			ScriptURL: db.ScriptURL,
			Token:     db.Token,
			EditCount: int(db.EditCount),
		}
	}

	return &domain.User{
		Email:     u.Email,
		Password:  string(u.Password),
		PIN:       string(u.PIN),
		EditCount: int(u.EditCount),
		Databases: databases,
		CreatedAt: string(u.CreatedAt),
	}
}

// envelope is the flat response shape every directory action shares.
type envelope struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message"`
	User    *wireUser               `json:"user"`
	Users   []wireUser              `json:"users"`
	Data    *domain.TokenResolution `json:"data"`
}
