package i18n

// translations holds the static storefront strings for the four supported
// languages. Keys missing from a language fall back to English at lookup.
var translations = map[string]map[string]string{
	LangNL: {
		// Navigation
		"home":       "Home",
		"categories": "Categorieën",
		"cart":       "Winkelwagen",
		"account":    "Account",
		"admin":      "Beheer",

		// General
		"search":  "Zoeken...",
		"loading": "Laden...",
		"error":   "Fout",
		"success": "Succes",
		"cancel":  "Annuleren",
		"save":    "Opslaan",
		"delete":  "Verwijderen",
		"edit":    "Bewerken",
		"add":     "Toevoegen",
		"back":    "Terug",

		// Products
		"products":       "Producten",
		"product":        "Product",
		"price":          "Prijs",
		"stock":          "Voorraad",
		"inStock":        "Op voorraad",
		"outOfStock":     "Niet op voorraad",
		"addToCart":      "In winkelwagen",
		"brand":          "Merk",
		"specifications": "Specificaties",

		// Cart
		"emptyCart":        "Uw winkelwagen is leeg",
		"subtotal":         "Subtotaal",
		"tax":              "BTW (21%)",
		"total":            "Totaal",
		"checkout":         "Afrekenen",
		"continueShopping": "Verder winkelen",
		"removeFromCart":   "Verwijderen",
		"quantity":         "Aantal",

		// Checkout
		"customerInfo":  "Klantgegevens",
		"name":          "Naam",
		"email":         "E-mail",
		"phone":         "Telefoon",
		"address":       "Adres",
		"city":          "Stad",
		"postalCode":    "Postcode",
		"country":       "Land",
		"paymentMethod": "Betaalmethode",
		"placeOrder":    "Bestelling plaatsen",
		"orderPlaced":   "Bestelling geplaatst!",
		"orderNumber":   "Bestelnummer",
		"discountCode":  "Kortingscode",
		"applyDiscount": "Toepassen",

		// Payment methods
		"mockPayment": "Test betaling",
		"bancontact":  "Bancontact",
		"ideal":       "iDEAL",
		"paypal":      "PayPal",
		"card":        "Creditcard",

		// Admin
		"dashboard":     "Dashboard",
		"orders":        "Bestellingen",
		"customers":     "Klanten",
		"discounts":     "Kortingen",
		"settings":      "Instellingen",
		"revenue":       "Omzet",
		"pendingOrders": "Openstaande bestellingen",
		"lowStock":      "Lage voorraad",
		"recentOrders":  "Recente bestellingen",
		"topProducts":   "Top producten",
		"addProduct":    "Product toevoegen",
		"addCategory":   "Categorie toevoegen",
		"editProduct":   "Product bewerken",
		"editCategory":  "Categorie bewerken",

		// Order status
		"pending":    "In afwachting",
		"confirmed":  "Bevestigd",
		"processing": "In behandeling",
		"shipped":    "Verzonden",
		"delivered":  "Afgeleverd",
		"cancelled":  "Geannuleerd",

		// Payment status
		"paid":     "Betaald",
		"failed":   "Mislukt",
		"refunded": "Terugbetaald",

		// Language
		"language": "Taal",
		"dutch":    "Nederlands",
		"french":   "Frans",
		"english":  "Engels",
		"turkish":  "Turks",

		// Welcome
		"welcome":          "Welkom bij",
		"storeName":        "Hardware Store",
		"shopNow":          "Winkel nu",
		"allCategories":    "Alle categorieën",
		"featuredProducts": "Uitgelichte producten",
	},

	LangFR: {
		// Navigation
		"home":       "Accueil",
		"categories": "Catégories",
		"cart":       "Panier",
		"account":    "Compte",
		"admin":      "Admin",

		// General
		"search":  "Rechercher...",
		"loading": "Chargement...",
		"error":   "Erreur",
		"success": "Succès",
		"cancel":  "Annuler",
		"save":    "Enregistrer",
		"delete":  "Supprimer",
		"edit":    "Modifier",
		"add":     "Ajouter",
		"back":    "Retour",

		// Products
		"products":       "Produits",
		"product":        "Produit",
		"price":          "Prix",
		"stock":          "Stock",
		"inStock":        "En stock",
		"outOfStock":     "Rupture de stock",
		"addToCart":      "Ajouter au panier",
		"brand":          "Marque",
		"specifications": "Spécifications",

		// Cart
		"emptyCart":        "Votre panier est vide",
		"subtotal":         "Sous-total",
		"tax":              "TVA (21%)",
		"total":            "Total",
		"checkout":         "Commander",
		"continueShopping": "Continuer vos achats",
		"removeFromCart":   "Supprimer",
		"quantity":         "Quantité",

		// Checkout
		"customerInfo":  "Informations client",
		"name":          "Nom",
		"email":         "E-mail",
		"phone":         "Téléphone",
		"address":       "Adresse",
		"city":          "Ville",
		"postalCode":    "Code postal",
		"country":       "Pays",
		"paymentMethod": "Mode de paiement",
		"placeOrder":    "Passer la commande",
		"orderPlaced":   "Commande passée!",
		"orderNumber":   "Numéro de commande",
		"discountCode":  "Code promo",
		"applyDiscount": "Appliquer",

		// Payment methods
		"mockPayment": "Paiement test",
		"bancontact":  "Bancontact",
		"ideal":       "iDEAL",
		"paypal":      "PayPal",
		"card":        "Carte de crédit",

		// Admin
		"dashboard":     "Tableau de bord",
		"orders":        "Commandes",
		"customers":     "Clients",
		"discounts":     "Réductions",
		"settings":      "Paramètres",
		"revenue":       "Chiffre d'affaires",
		"pendingOrders": "Commandes en attente",
		"lowStock":      "Stock faible",
		"recentOrders":  "Commandes récentes",
		"topProducts":   "Meilleurs produits",
		"addProduct":    "Ajouter un produit",
		"addCategory":   "Ajouter une catégorie",
		"editProduct":   "Modifier le produit",
		"editCategory":  "Modifier la catégorie",

		// Order status
		"pending":    "En attente",
		"confirmed":  "Confirmé",
		"processing": "En traitement",
		"shipped":    "Expédié",
		"delivered":  "Livré",
		"cancelled":  "Annulé",

		// Payment status
		"paid":     "Payé",
		"failed":   "Échoué",
		"refunded": "Remboursé",

		// Language
		"language": "Langue",
		"dutch":    "Néerlandais",
		"french":   "Français",
		"english":  "Anglais",
		"turkish":  "Turc",

		// Welcome
		"welcome":          "Bienvenue chez",
		"storeName":        "Quincaillerie",
		"shopNow":          "Acheter maintenant",
		"allCategories":    "Toutes les catégories",
		"featuredProducts": "Produits en vedette",
	},

	LangEN: {
		// Navigation
		"home":       "Home",
		"categories": "Categories",
		"cart":       "Cart",
		"account":    "Account",
		"admin":      "Admin",

		// General
		"search":  "Search...",
		"loading": "Loading...",
		"error":   "Error",
		"success": "Success",
		"cancel":  "Cancel",
		"save":    "Save",
		"delete":  "Delete",
		"edit":    "Edit",
		"add":     "Add",
		"back":    "Back",

		// Products
		"products":       "Products",
		"product":        "Product",
		"price":          "Price",
		"stock":          "Stock",
		"inStock":        "In stock",
		"outOfStock":     "Out of stock",
		"addToCart":      "Add to cart",
		"brand":          "Brand",
		"specifications": "Specifications",

		// Cart
		"emptyCart":        "Your cart is empty",
		"subtotal":         "Subtotal",
		"tax":              "VAT (21%)",
		"total":            "Total",
		"checkout":         "Checkout",
		"continueShopping": "Continue shopping",
		"removeFromCart":   "Remove",
		"quantity":         "Quantity",

		// Checkout
		"customerInfo":  "Customer Information",
		"name":          "Name",
		"email":         "Email",
		"phone":         "Phone",
		"address":       "Address",
		"city":          "City",
		"postalCode":    "Postal Code",
		"country":       "Country",
		"paymentMethod": "Payment Method",
		"placeOrder":    "Place Order",
		"orderPlaced":   "Order Placed!",
		"orderNumber":   "Order Number",
		"discountCode":  "Discount Code",
		"applyDiscount": "Apply",

		// Payment methods
		"mockPayment": "Test Payment",
		"bancontact":  "Bancontact",
		"ideal":       "iDEAL",
		"paypal":      "PayPal",
		"card":        "Credit Card",

		// Admin
		"dashboard":     "Dashboard",
		"orders":        "Orders",
		"customers":     "Customers",
		"discounts":     "Discounts",
		"settings":      "Settings",
		"revenue":       "Revenue",
		"pendingOrders": "Pending Orders",
		"lowStock":      "Low Stock",
		"recentOrders":  "Recent Orders",
		"topProducts":   "Top Products",
		"addProduct":    "Add Product",
		"addCategory":   "Add Category",
		"editProduct":   "Edit Product",
		"editCategory":  "Edit Category",

		// Order status
		"pending":    "Pending",
		"confirmed":  "Confirmed",
		"processing": "Processing",
		"shipped":    "Shipped",
		"delivered":  "Delivered",
		"cancelled":  "Cancelled",

		// Payment status
		"paid":     "Paid",
		"failed":   "Failed",
		"refunded": "Refunded",

		// Language
		"language": "Language",
		"dutch":    "Dutch",
		"french":   "French",
		"english":  "English",
		"turkish":  "Turkish",

		// Welcome
		"welcome":          "Welcome to",
		"storeName":        "Hardware Store",
		"shopNow":          "Shop Now",
		"allCategories":    "All Categories",
		"featuredProducts": "Featured Products",
	},

	LangTR: {
		// Navigation
		"home":       "Ana Sayfa",
		"categories": "Kategoriler",
		"cart":       "Sepet",
		"account":    "Hesap",
		"admin":      "Yönetim",

		// General
		"search":  "Ara...",
		"loading": "Yükleniyor...",
		"error":   "Hata",
		"success": "Başarılı",
		"cancel":  "İptal",
		"save":    "Kaydet",
		"delete":  "Sil",
		"edit":    "Düzenle",
		"add":     "Ekle",
		"back":    "Geri",

		// Products
		"products":       "Ürünler",
		"product":        "Ürün",
		"price":          "Fiyat",
		"stock":          "Stok",
		"inStock":        "Stokta",
		"outOfStock":     "Stokta yok",
		"addToCart":      "Sepete ekle",
		"brand":          "Marka",
		"specifications": "Özellikler",

		// Cart
		"emptyCart":        "Sepetiniz boş",
		"subtotal":         "Ara toplam",
		"tax":              "KDV (21%)",
		"total":            "Toplam",
		"checkout":         "Ödeme",
		"continueShopping": "Alışverişe devam",
		"removeFromCart":   "Kaldır",
		"quantity":         "Miktar",

		// Checkout
		"customerInfo":  "Müşteri Bilgileri",
		"name":          "Ad Soyad",
		"email":         "E-posta",
		"phone":         "Telefon",
		"address":       "Adres",
		"city":          "Şehir",
		"postalCode":    "Posta Kodu",
		"country":       "Ülke",
		"paymentMethod": "Ödeme Yöntemi",
		"placeOrder":    "Sipariş Ver",
		"orderPlaced":   "Sipariş Verildi!",
		"orderNumber":   "Sipariş Numarası",
		"discountCode":  "İndirim Kodu",
		"applyDiscount": "Uygula",

		// Payment methods
		"mockPayment": "Test Ödeme",
		"bancontact":  "Bancontact",
		"ideal":       "iDEAL",
		"paypal":      "PayPal",
		"card":        "Kredi Kartı",

		// Admin
		"dashboard":     "Kontrol Paneli",
		"orders":        "Siparişler",
		"customers":     "Müşteriler",
		"discounts":     "İndirimler",
		"settings":      "Ayarlar",
		"revenue":       "Gelir",
		"pendingOrders": "Bekleyen Siparişler",
		"lowStock":      "Düşük Stok",
		"recentOrders":  "Son Siparişler",
		"topProducts":   "En Çok Satan",
		"addProduct":    "Ürün Ekle",
		"addCategory":   "Kategori Ekle",
		"editProduct":   "Ürün Düzenle",
		"editCategory":  "Kategori Düzenle",

		// Order status
		"pending":    "Beklemede",
		"confirmed":  "Onaylandı",
		"processing": "İşleniyor",
		"shipped":    "Kargoya verildi",
		"delivered":  "Teslim edildi",
		"cancelled":  "İptal edildi",

		// Payment status
		"paid":     "Ödendi",
		"failed":   "Başarısız",
		"refunded": "İade edildi",

		// Language
		"language": "Dil",
		"dutch":    "Hollandaca",
		"french":   "Fransızca",
		"english":  "İngilizce",
		"turkish":  "Türkçe",

		// Welcome
		"welcome":          "Hoş geldiniz",
		"storeName":        "Hırdavat Dükkanı",
		"shopNow":          "Alışverişe Başla",
		"allCategories":    "Tüm Kategoriler",
		"featuredProducts": "Öne Çıkan Ürünler",
	},
}
