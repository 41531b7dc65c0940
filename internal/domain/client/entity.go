package client

type Client struct {
	ID       string
	Name     string
	Industry string
}
