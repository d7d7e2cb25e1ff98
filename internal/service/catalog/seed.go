package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/repo"
	enttest "github.com/ortholab/depisto_backend/internal/repo/test"
)

// seedItem is one row of the built-in grid. Age windows follow the part
// bands; counts_dg marks contribution to the general-development composite.
type seedItem struct {
	part   ide.Part
	domain ide.Domain
	order  int
	text   string
	dg     bool
}

// seedGrid is an abridged version of the IDE grid used for development and
// staging databases. Production catalogs are imported from the publisher's
// full item bank via `depisto system seed --items <file>`.
var seedGrid = []seedItem{
	// Partie AP (15-18 mois)
	{ide.PartAP, ide.DomainSO, 1, "Joue à des jeux simples d'échange (donner/recevoir)", false},
	{ide.PartAP, ide.DomainSO, 2, "Manifeste de l'intérêt pour les autres enfants", false},
	{ide.PartAP, ide.DomainAU, 1, "Boit seul au verre ou à la tasse", false},
	{ide.PartAP, ide.DomainMG, 1, "Marche seul sans aide", false},
	{ide.PartAP, ide.DomainMF, 1, "Empile deux cubes", false},
	{ide.PartAP, ide.DomainLEX, 1, "Dit au moins trois mots reconnaissables", false},
	{ide.PartAP, ide.DomainLCO, 1, "Montre un objet familier sur demande", false},

	// Partie A (18-24 mois)
	{ide.PartA, ide.DomainSO, 1, "Imite les activités des adultes (ménage, téléphone)", true},
	{ide.PartA, ide.DomainSO, 2, "Joue à côté d'autres enfants", true},
	{ide.PartA, ide.DomainAU, 1, "Mange seul avec une cuillère", true},
	{ide.PartA, ide.DomainAU, 2, "Enlève seul un vêtement simple", true},
	{ide.PartA, ide.DomainMG, 1, "Monte un escalier en se tenant à la rampe", true},
	{ide.PartA, ide.DomainMG, 2, "Tape dans un ballon sans tomber", true},
	{ide.PartA, ide.DomainMF, 1, "Empile quatre cubes ou plus", true},
	{ide.PartA, ide.DomainMF, 2, "Gribouille spontanément avec un crayon", true},
	{ide.PartA, ide.DomainLEX, 1, "Utilise au moins dix mots", true},
	{ide.PartA, ide.DomainLEX, 2, "Associe deux mots (« papa parti »)", true},
	{ide.PartA, ide.DomainLCO, 1, "Exécute une consigne simple sans geste", true},
	{ide.PartA, ide.DomainLCO, 2, "Montre trois parties du corps sur demande", true},

	// Partie B (24-36 mois)
	{ide.PartB, ide.DomainSO, 1, "Participe à des jeux de groupe simples (rondes)", true},
	{ide.PartB, ide.DomainSO, 2, "Dit « je » ou « moi » en parlant de lui-même", false},
	{ide.PartB, ide.DomainAU, 1, "Se lave et s'essuie les mains seul", true},
	{ide.PartB, ide.DomainAU, 2, "Est propre le jour", true},
	{ide.PartB, ide.DomainMG, 1, "Saute sur place à pieds joints", true},
	{ide.PartB, ide.DomainMG, 2, "Pédale sur un tricycle", false},
	{ide.PartB, ide.DomainMF, 1, "Copie un trait vertical", true},
	{ide.PartB, ide.DomainMF, 2, "Tourne les pages d'un livre une par une", false},
	{ide.PartB, ide.DomainLEX, 1, "Fait des phrases de trois mots ou plus", true},
	{ide.PartB, ide.DomainLEX, 2, "Se fait comprendre de personnes étrangères à la famille", true},
	{ide.PartB, ide.DomainLCO, 1, "Comprend deux consignes données ensemble", true},
	{ide.PartB, ide.DomainLCO, 2, "Comprend « sur », « sous », « dans »", false},

	// Partie C (36-48 mois)
	{ide.PartC, ide.DomainSO, 1, "Joue à des jeux de rôle avec d'autres enfants", true},
	{ide.PartC, ide.DomainSO, 2, "Attend son tour dans un jeu", true},
	{ide.PartC, ide.DomainAU, 1, "S'habille seul sauf boutons et lacets", true},
	{ide.PartC, ide.DomainMG, 1, "Se tient sur un pied au moins deux secondes", true},
	{ide.PartC, ide.DomainMG, 2, "Descend un escalier en alternant les pieds", false},
	{ide.PartC, ide.DomainMF, 1, "Copie un cercle", true},
	{ide.PartC, ide.DomainMF, 2, "Découpe avec des ciseaux en suivant un trait", false},
	{ide.PartC, ide.DomainLEX, 1, "Raconte un événement récent de façon compréhensible", true},
	{ide.PartC, ide.DomainLEX, 2, "Utilise correctement le pluriel", true},
	{ide.PartC, ide.DomainLCO, 1, "Comprend une question « pourquoi ? »", true},
	{ide.PartC, ide.DomainLCO, 2, "Identifie quatre couleurs sur demande", false},

	// Partie D (48-60 mois)
	{ide.PartD, ide.DomainSO, 1, "Se fait des amis et les nomme", true},
	{ide.PartD, ide.DomainAU, 1, "Va seul aux toilettes", true},
	{ide.PartD, ide.DomainMG, 1, "Saute à cloche-pied sur trois mètres", true},
	{ide.PartD, ide.DomainMF, 1, "Copie un carré", true},
	{ide.PartD, ide.DomainMF, 2, "Dessine un bonhomme avec au moins trois parties", false},
	{ide.PartD, ide.DomainLEX, 1, "Fait des phrases complexes avec « parce que »", true},
	{ide.PartD, ide.DomainLCO, 1, "Comprend une histoire courte lue à voix haute", false},
	{ide.PartD, ide.DomainLE, 1, "Reconnaît quelques lettres de son prénom", false},
	{ide.PartD, ide.DomainNBRE, 1, "Compte quatre objets en les pointant", false},

	// Partie E (60-72 mois)
	{ide.PartE, ide.DomainSO, 1, "Respecte les règles d'un jeu de société simple", true},
	{ide.PartE, ide.DomainSO, 2, "Console un autre enfant qui pleure", true},
	{ide.PartE, ide.DomainAU, 1, "Fait ses lacets ou attache une fermeture éclair", true},
	{ide.PartE, ide.DomainAU, 2, "Traverse une rue calme en regardant des deux côtés", true},
	{ide.PartE, ide.DomainMG, 1, "Sautille en alternant les pieds (galop, corde)", true},
	{ide.PartE, ide.DomainMF, 1, "Copie un triangle", true},
	{ide.PartE, ide.DomainMF, 2, "Écrit son prénom en majuscules", true},
	{ide.PartE, ide.DomainLEX, 1, "Définit des mots simples (« qu'est-ce qu'une pomme ? »)", true},
	{ide.PartE, ide.DomainLEX, 2, "Articule tous les sons de la langue", true},
	{ide.PartE, ide.DomainLCO, 1, "Suit trois consignes données en une seule fois", true},
	{ide.PartE, ide.DomainLE, 1, "Nomme la plupart des lettres de l'alphabet", true},
	{ide.PartE, ide.DomainLE, 2, "Lit quelques mots simples", false},
	{ide.PartE, ide.DomainNBRE, 1, "Compte jusqu'à vingt sans erreur", true},
	{ide.PartE, ide.DomainNBRE, 2, "Compare des petites quantités (« lequel en a le plus ? »)", false},
}

// partAgeWindows gives the applicability window of each part's items.
var partAgeWindows = map[ide.Part][2]int{
	ide.PartAP: {15, 18},
	ide.PartA:  {18, 24},
	ide.PartB:  {24, 36},
	ide.PartC:  {36, 48},
	ide.PartD:  {48, 60},
	ide.PartE:  {60, 72},
}

// SeedIDE creates the IDE test definition and its item grid if missing.
// Idempotent: an existing active IDE test short-circuits.
func SeedIDE(ctx context.Context, db *repo.Client) error {
	exists, err := db.Test.Query().
		Where(enttest.KindEQ(enttest.KindIDE), enttest.IsActive(true)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check IDE test: %w", err)
	}
	if exists {
		slog.Info("catalog seed: IDE test already present, skipping")
		return nil
	}

	t, err := db.Test.Create().
		SetKind(enttest.KindIDE).
		SetName("Inventaire du Développement de l'Enfant (IDE)").
		SetDescription("Questionnaire de dépistage développemental 15-72 mois, rempli par les parents.").
		SetAgeMinMonths(15).
		SetAgeMaxMonths(72).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create IDE test: %w", err)
	}

	bulk := make([]*repo.TestItemCreate, 0, len(seedGrid))
	for _, row := range seedGrid {
		window := partAgeWindows[row.part]
		bulk = append(bulk, db.TestItem.Create().
			SetTestID(t.ID).
			SetPart(string(row.part)).
			SetDomain(string(row.domain)).
			SetItemOrder(row.order).
			SetText(row.text).
			SetCountsDg(row.dg).
			SetAgeMinMonths(window[0]).
			SetAgeMaxMonths(window[1]))
	}

	if _, err := db.TestItem.CreateBulk(bulk...).Save(ctx); err != nil {
		return fmt.Errorf("seed IDE items: %w", err)
	}

	slog.Info("catalog seed: IDE grid created", "items", len(seedGrid))
	return nil
}
