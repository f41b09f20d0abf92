package owner_test

import (
	"fmt"

	"github.com/LerianStudio/lib-guard/guard/owner"
)

type conn struct {
	closed bool
}

func (c *conn) Close() { c.closed = true }

// pool demonstrates the marker: the pool owns the connection and is the only
// component that closes it; borrowers work with the raw handle.
type pool struct {
	conn owner.Owner[*conn]
}

func (p *pool) shutdown() {
	p.conn.Close()
}

func ExampleOwner() {
	c := &conn{}
	p := &pool{conn: c}

	// The alias is transparent: the owned handle and the raw handle are the
	// same type, so no conversion is needed in either direction.
	var borrowed *conn = p.conn

	p.shutdown()

	fmt.Println(borrowed.closed)

	// Output:
	// true
}
