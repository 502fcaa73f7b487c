package server

import (
	"net"
	"strconv"
)

type HttpConfig struct {
	Host string `conf:"host"`
	Port int    `conf:"port"`
	H2c  bool   `conf:"h2c"`
}

// Addr returns the address the server listens on.
func (c HttpConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
