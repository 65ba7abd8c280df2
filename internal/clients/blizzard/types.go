package blizzard

// tokenResponse is the OAuth client-credentials grant response
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// itemResponse is the subset of the item endpoint we consume
type itemResponse struct {
	Name          string       `json:"name"`
	Level         int          `json:"level"`
	RequiredLevel int          `json:"required_level"`
	MaxStackSize  int          `json:"max_stack_size"`
	SellPrice     int64        `json:"sell_price"`
	Quality       *namedType   `json:"quality"`
	ItemClass     *namedRef    `json:"item_class"`
	ItemSubclass  *namedRef    `json:"item_subclass"`
	InventoryType *namedType   `json:"inventory_type"`
	PreviewItem   *previewItem `json:"preview_item"`
}

type namedType struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

type namedRef struct {
	Name string `json:"name"`
}

type previewItem struct {
	Quality      *namedType    `json:"quality"`
	Binding      *namedRef     `json:"binding"`
	Stats        []previewStat `json:"stats"`
	Spells       []previewSpell `json:"spells"`
	Requirements *requirements `json:"requirements"`
	Weapon       *weapon       `json:"weapon"`
	Armor        *armor        `json:"armor"`
	Durability   *displayOnly  `json:"durability"`
}

type previewStat struct {
	Display *displayString `json:"display"`
}

type previewSpell struct {
	Description string `json:"description"`
}

type requirements struct {
	Level *struct {
		Value int `json:"value"`
	} `json:"level"`
}

type weapon struct {
	Damage      *displayString `json:"damage"`
	AttackSpeed *displayString `json:"attack_speed"`
}

type armor struct {
	Display *displayString `json:"display"`
}

type displayString struct {
	DisplayString string `json:"display_string"`
}

type displayOnly struct {
	DisplayString string `json:"display_string"`
}

// mediaResponse is the subset of the media endpoint we consume
type mediaResponse struct {
	Assets []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"assets"`
}

// searchResponse is the subset of the search endpoint we consume
type searchResponse struct {
	Results []struct {
		Data struct {
			ID int `json:"id"`
		} `json:"data"`
	} `json:"results"`
}
