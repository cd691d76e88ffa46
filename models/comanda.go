package models

// Status is the lifecycle state of a comanda as stored by the backend.
type Status string

const (
	StatusOpen      Status = "ABERTA"
	StatusClosed    Status = "FECHADA"
	StatusCancelled Status = "CANCELADA"
	StatusPending   Status = "PENDENTE"
)

func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed || s == StatusCancelled || s == StatusPending
}

type Comanda struct {
	ID     int      `db:"id" json:"id"`
	Number int      `db:"numero" json:"numero"`
	Date   string   `db:"data" json:"data"` // ISO-8601 timestamp as sent by the backend
	Status Status   `db:"status" json:"status"`
	Items  []Pedido `db:"-" json:"pedidos"`
}

// Pedido is one product line inside a comanda. Quantity and UnitPrice come
// over the wire as strings and may be malformed; Subtotal is precomputed by
// the backend and is not trusted for totals.
type Pedido struct {
	ID        string  `db:"id" json:"id"`
	ComandaID int     `db:"comanda_id" json:"comandaId"`
	ProductID int     `db:"produto_id" json:"produtoId"`
	Quantity  string  `db:"quantidade" json:"quantidade"`
	UnitPrice string  `db:"preco_unitario" json:"precoUnitario"`
	Subtotal  string  `db:"subtotal" json:"subtotal"`
	Notes     string  `db:"observacoes" json:"observacoes"`
	Product   Produto `db:"-" json:"produto"`
}

type Produto struct {
	ID          int     `db:"id" json:"id"`
	Name        string  `db:"nome" json:"nome"`
	Description string  `db:"descricao" json:"descricao"`
	Price       string  `db:"preco" json:"preco"`
	Stock       int     `db:"estoque" json:"estoque"`
	Active      bool    `db:"ativo" json:"ativo"`
	Image       *string `db:"imagem" json:"imagem"`
	CategoryID  int     `db:"categoria_id" json:"categoriaId"`
	ItemType    string  `db:"tipo_item" json:"tipo_item"`
}
