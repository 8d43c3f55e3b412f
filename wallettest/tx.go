package wallettest

import "github.com/iov-one/mswallet"

// Tx carries a single message. When Err is set GetMsg fails with it.
type Tx struct {
	Msg mswallet.Msg
	Err error
}

var _ mswallet.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (mswallet.Msg, error) {
	return tx.Msg, tx.Err
}

// Marshal and Unmarshal are never reached, handlers only see decoded
// transactions.
func (tx *Tx) Marshal() ([]byte, error) { panic("wallettest: Tx is not serializable") }
func (tx *Tx) Unmarshal([]byte) error { panic("wallettest: Tx is not serializable") }

// Msg routes to RoutePath. Err, when set, fails validation.
type Msg struct {
	RoutePath string
	Err       error
	raw       []byte
}

var _ mswallet.Msg = (*Msg)(nil)

func (m *Msg) Path() string { return m.RoutePath }

func (m *Msg) Validate() error { return m.Err }

func (m *Msg) Marshal() ([]byte, error) { return m.raw, m.Err }

func (m *Msg) Unmarshal(b []byte) error {
	m.raw = b
	return m.Err
}
