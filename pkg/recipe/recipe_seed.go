package recipe

import "Go-Receitas-API/entities"

// DefaultRecipes is the catalogue a fresh store starts with.
func DefaultRecipes() []entities.Recipe {
	return []entities.Recipe{
		{
			ID:          1,
			Name:        "Bolo de Chocolate",
			Ingredients: []string{"farinha", "açúcar", "chocolate em pó", "ovos", "leite", "óleo"},
			Preparation: "Misture tudo e asse.",
		},
		{
			ID:          2,
			Name:        "Brigadeiro",
			Ingredients: []string{"leite condensado", "chocolate em pó", "manteiga"},
			Preparation: "Misture no fogo até desgrudar da panela.",
		},
		{
			ID:          3,
			Name:        "Pudim",
			Ingredients: []string{"leite condensado", "leite", "ovos", "açúcar"},
			Preparation: "Faça a calda, misture os ingredientes e asse em banho-maria.",
		},
		{
			ID:          4,
			Name:        "Feijoada",
			Ingredients: []string{"feijão preto", "carne seca", "linguiça", "costelinha", "bacon", "alho", "cebola"},
			Preparation: "Cozinhe o feijão e as carnes separadamente, depois junte tudo e tempere.",
		},
		{
			ID:          5,
			Name:        "Moqueca de Peixe",
			Ingredients: []string{"peixe", "azeite de dendê", "leite de coco", "tomate", "cebola", "pimentões", "coentro"},
			Preparation: "Refogue os temperos, adicione o peixe e cozinhe com leite de coco e azeite de dendê.",
		},
		{
			ID:          6,
			Name:        "Pão de Queijo",
			Ingredients: []string{"polvilho doce", "queijo minas", "leite", "óleo", "ovos", "sal"},
			Preparation: "Misture os ingredientes, faça bolinhas e asse.",
		},
	}
}
