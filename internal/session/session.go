// Package session is the durable store for the bearer credential.
//
// The credential lives in two named slots, one for the raw token and one for
// the serialized account record. Slots persist across process restarts in a
// database backend (SQLite by default) so that a login survives until it is
// cleared or the remote authority expires it.
package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/hellperdev/contactbook/schema"
)

// Slot keys for the two persisted records.
const (
	slotToken   = "token"
	slotAccount = "account"
)

// sessionTable is the name of the table holding the session slots.
const sessionTable = "contactbook_session_slots"

// readSlots loads both slots and assembles a credential. A missing token slot
// reads as absent. A token without a parseable account record is corrupt
// state: it reads as absent and the store self-heals by clearing both slots.
func readSlots(get func(key string) (string, bool, error), clear func() error) (schema.Credential, bool, error) {
	token, ok, err := get(slotToken)
	if err != nil || !ok || token == "" {
		return schema.Credential{}, false, err
	}

	raw, ok, err := get(slotAccount)
	if err != nil {
		return schema.Credential{}, false, err
	}

	var account schema.Account
	if !ok || json.Unmarshal([]byte(raw), &account) != nil || account.Login == "" {
		// Self-healing against corrupt storage.
		if err := clear(); err != nil {
			return schema.Credential{}, false, err
		}
		return schema.Credential{}, false, nil
	}

	return schema.Credential{Token: token, Login: account.Login}, true, nil
}

// encodeAccount serializes the account slot value for a credential.
func encodeAccount(cred schema.Credential) (string, error) {
	raw, err := json.Marshal(schema.Account{Login: cred.Login})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// scanSlotValue normalizes the single-row lookup result shared by the SQL
// backends.
func scanSlotValue(row *sql.Row) (string, bool, error) {
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

// now returns the slot timestamp. Wall-clock seconds are enough here.
func now() int64 {
	return time.Now().Unix()
}

// timeUnix converts a slot timestamp back into a time.Time.
func timeUnix(ts int64) time.Time {
	return time.Unix(ts, 0)
}
