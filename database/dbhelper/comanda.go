package dbhelper

import (
	"database/sql"

	"github.com/ray-remotestate/comandas/database"
	"github.com/ray-remotestate/comandas/models"
)

// ListComandas returns every comanda with its pedidos and product snapshots,
// oldest first so the client sees a stable order.
func ListComandas() ([]models.Comanda, error) {
	rows, err := database.Comandas.Query(`
		SELECT id, numero, to_char(data, 'YYYY-MM-DD"T"HH24:MI:SS'), status
		FROM comandas
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comandas []models.Comanda
	index := make(map[int]int)
	for rows.Next() {
		var c models.Comanda
		if err := rows.Scan(&c.ID, &c.Number, &c.Date, &c.Status); err != nil {
			return nil, err
		}
		c.Items = []models.Pedido{}
		index[c.ID] = len(comandas)
		comandas = append(comandas, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	pedidos, err := listPedidos(`ORDER BY p.comanda_id, p.created_at`)
	if err != nil {
		return nil, err
	}
	for _, p := range pedidos {
		if i, ok := index[p.ComandaID]; ok {
			comandas[i].Items = append(comandas[i].Items, p)
		}
	}
	return comandas, nil
}

// GetComandaByID returns one comanda with its pedidos, or sql.ErrNoRows.
func GetComandaByID(id int) (*models.Comanda, error) {
	var c models.Comanda
	err := database.Comandas.QueryRow(`
		SELECT id, numero, to_char(data, 'YYYY-MM-DD"T"HH24:MI:SS'), status
		FROM comandas
		WHERE id = $1`, id).
		Scan(&c.ID, &c.Number, &c.Date, &c.Status)
	if err != nil {
		return nil, err
	}

	c.Items, err = listPedidos(`WHERE p.comanda_id = $1 ORDER BY p.created_at`, id)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateComanda inserts a comanda and returns its id.
func CreateComanda(tx *sql.Tx, numero int, status models.Status) (int, error) {
	var id int
	err := tx.QueryRow(`
		INSERT INTO comandas (numero, status, data)
		VALUES ($1, $2, NOW())
		RETURNING id`, numero, status).Scan(&id)
	return id, err
}

func listPedidos(tail string, args ...interface{}) ([]models.Pedido, error) {
	query := `
		SELECT p.id, p.comanda_id, p.produto_id, p.quantidade, p.preco_unitario,
		       p.subtotal, p.observacoes,
		       pr.id, pr.nome, pr.descricao, pr.preco, pr.estoque, pr.ativo,
		       pr.imagem, pr.categoria_id, pr.tipo_item
		FROM pedidos p
		JOIN produtos pr ON pr.id = p.produto_id
		` + tail

	rows, err := database.Comandas.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pedidos []models.Pedido
	for rows.Next() {
		var p models.Pedido
		if err := rows.Scan(
			&p.ID, &p.ComandaID, &p.ProductID, &p.Quantity, &p.UnitPrice,
			&p.Subtotal, &p.Notes,
			&p.Product.ID, &p.Product.Name, &p.Product.Description, &p.Product.Price,
			&p.Product.Stock, &p.Product.Active, &p.Product.Image,
			&p.Product.CategoryID, &p.Product.ItemType,
		); err != nil {
			return nil, err
		}
		pedidos = append(pedidos, p)
	}
	return pedidos, rows.Err()
}
