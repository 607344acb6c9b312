package emu

import "github.com/retroenv/retrogolib/log"

// DGet reads persistent cart data slot i. The 256-byte area holds 64
// little-endian 32-bit slots; the index wraps.
func (c *Console) DGet(i int) uint32 {
	return c.Peek4(cartSlotAddr(i))
}

// DSet writes persistent cart data slot i. The value is only committed
// to the save target on FlushCartData.
func (c *Console) DSet(i int, v uint32) {
	c.Poke4(cartSlotAddr(i), v)
}

func cartSlotAddr(i int) uint16 {
	return MemCartDataAddr + uint16((i*4)&0xFF)
}

// FlushCartData commits pending cart data writes. Nothing happens when
// no write changed the data since the last flush.
func (c *Console) FlushCartData() error {
	if !c.cartData.Dirty() {
		return nil
	}
	if err := c.cartData.Flush(); err != nil {
		c.logger.Error("Flushing cart data failed", log.Err(err))
		return err
	}
	c.logger.Debug("Cart data flushed", log.Int("size", c.cartData.Size()))
	return nil
}

// CartData returns a copy of the last committed cart data.
func (c *Console) CartData() []byte {
	return c.cartData.Committed()
}

// SetCartData loads previously saved cart data. Missing trailing bytes
// read as 0.
func (c *Console) SetCartData(data []byte) {
	c.cartData.Load(data)
}
