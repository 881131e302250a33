package i18n

var translations = map[string]map[Key]string{
	"en-US": {
		LanguageTitle:       "Choose your language",
		CommonBack:          "Back",
		UploadTitle:         "Scan Menu",
		UploadSubtitle:      "Take photos of all menu pages. We'll combine them into one order list.",
		UploadCamera:        "Camera",
		UploadGallery:       "Gallery",
		UploadAnalyze:       "Analyze Menu",
		UploadNoImages:      "No images selected",
		UploadAddPage:       "Add Page",
		ProcessingTitle:     "Analyzing Menu...",
		OrderingTitle:       "Menu",
		OrderingRescan:      "Rescan",
		OrderingAdd:         "Add",
		OrderingTotalItems:  "Total items",
		OrderingViewOrder:   "View Order List",
		SummaryTitle:        "Order List",
		SummaryShowStaff:    "Show this screen to staff",
		SummarySpeechBubble: "Excuse me, I would like to order this.",
		SummarySpeechSub:    "(Please translate this to local staff)",
		SummaryTotal:        "Total",
		SummaryFinish:       "Finish & Clear",
		NoticeNoItems:       "Could not identify menu items. Please try again with a clearer photo.",
		NoticeError:         "Error processing menu. Please try again.",
		NoticeInvalidKey:    "The AI service rejected the API key. Please check the key configuration.",
		NoticeMissingKey:    "The AI service API key is not configured.",
	},
	"zh-TW": {
		LanguageTitle:       "選擇您的語言",
		CommonBack:          "返回",
		UploadTitle:         "掃描菜單",
		UploadSubtitle:      "請拍攝菜單的所有頁面，我們會將其合併為一張點餐清單。",
		UploadCamera:        "相機",
		UploadGallery:       "相簿",
		UploadAnalyze:       "開始分析",
		UploadNoImages:      "尚未選擇圖片",
		UploadAddPage:       "新增頁面",
		ProcessingTitle:     "正在分析菜單...",
		OrderingTitle:       "菜單",
		OrderingRescan:      "重新掃描",
		OrderingAdd:         "加入",
		OrderingTotalItems:  "共計項目",
		OrderingViewOrder:   "查看點餐清單",
		SummaryTitle:        "點餐清單",
		SummaryShowStaff:    "請向店員出示此畫面",
		SummarySpeechBubble: "不好意思，我想點這些。",
		SummarySpeechSub:    "(Excuse me, I would like to order this.)",
		SummaryTotal:        "總計",
		SummaryFinish:       "完成並清除",
		NoticeNoItems:       "無法辨識菜單項目，請拍攝更清晰的照片後再試一次。",
		NoticeError:         "處理菜單時發生錯誤，請再試一次。",
		NoticeInvalidKey:    "AI 服務拒絕了 API 金鑰，請檢查金鑰設定。",
		NoticeMissingKey:    "尚未設定 AI 服務的 API 金鑰。",
	},
	"ja-JP": {
		LanguageTitle:       "言語を選択",
		CommonBack:          "戻る",
		UploadTitle:         "メニューをスキャン",
		UploadSubtitle:      "メニューの全ページを撮影してください。1つの注文リストにまとめます。",
		UploadCamera:        "カメラ",
		UploadGallery:       "アルバム",
		UploadAnalyze:       "分析する",
		UploadNoImages:      "画像が選択されていません",
		UploadAddPage:       "ページ追加",
		ProcessingTitle:     "メニューを分析中...",
		OrderingTitle:       "メニュー",
		OrderingRescan:      "再スキャン",
		OrderingAdd:         "追加",
		OrderingTotalItems:  "合計点数",
		OrderingViewOrder:   "注文リストを見る",
		SummaryTitle:        "注文リスト",
		SummaryShowStaff:    "この画面を店員に見せてください",
		SummarySpeechBubble: "すみません、これを注文したいです。",
		SummarySpeechSub:    "(Excuse me, I would like to order this.)",
		SummaryTotal:        "合計",
		SummaryFinish:       "終了してクリア",
		NoticeNoItems:       "メニュー項目を認識できませんでした。より鮮明な写真でもう一度お試しください。",
		NoticeError:         "メニューの処理中にエラーが発生しました。もう一度お試しください。",
		NoticeInvalidKey:    "AI サービスが API キーを拒否しました。キーの設定を確認してください。",
		NoticeMissingKey:    "AI サービスの API キーが設定されていません。",
	},
	"ko-KR": {
		LanguageTitle:       "언어를 선택하세요",
		CommonBack:          "뒤로",
		UploadTitle:         "메뉴 스캔",
		UploadSubtitle:      "모든 메뉴 페이지를 촬영하세요. 하나의 주문 목록으로 통합해 드립니다.",
		UploadCamera:        "카메라",
		UploadGallery:       "갤러리",
		UploadAnalyze:       "분석 시작",
		UploadNoImages:      "선택된 이미지 없음",
		UploadAddPage:       "페이지 추가",
		ProcessingTitle:     "메뉴 분석 중...",
		OrderingTitle:       "메뉴",
		OrderingRescan:      "다시 스캔",
		OrderingAdd:         "추가",
		OrderingTotalItems:  "총 항목",
		OrderingViewOrder:   "주문 목록 보기",
		SummaryTitle:        "주문 목록",
		SummaryShowStaff:    "직원에게 이 화면을 보여주세요",
		SummarySpeechBubble: "저기요, 이걸로 주문할게요.",
		SummarySpeechSub:    "(Excuse me, I would like to order this.)",
		SummaryTotal:        "합계",
		SummaryFinish:       "완료 및 초기화",
		NoticeNoItems:       "메뉴 항목을 인식하지 못했습니다. 더 선명한 사진으로 다시 시도하세요.",
		NoticeError:         "메뉴 처리 중 오류가 발생했습니다. 다시 시도하세요.",
		NoticeInvalidKey:    "AI 서비스가 API 키를 거부했습니다. 키 설정을 확인하세요.",
		NoticeMissingKey:    "AI 서비스 API 키가 설정되지 않았습니다.",
	},
	"fr-FR": {
		LanguageTitle:       "Choisissez votre langue",
		CommonBack:          "Retour",
		UploadTitle:         "Scanner le menu",
		UploadSubtitle:      "Prenez des photos de toutes les pages. Nous les combinerons en une liste.",
		UploadCamera:        "Caméra",
		UploadGallery:       "Galerie",
		UploadAnalyze:       "Analyser",
		UploadNoImages:      "Aucune image",
		UploadAddPage:       "Ajouter",
		ProcessingTitle:     "Analyse en cours...",
		OrderingTitle:       "Menu",
		OrderingRescan:      "Rescanner",
		OrderingAdd:         "Ajouter",
		OrderingTotalItems:  "Articles",
		OrderingViewOrder:   "Voir la commande",
		SummaryTitle:        "Commande",
		SummaryShowStaff:    "Montrez cet écran au personnel",
		SummarySpeechBubble: "Excusez-moi, je voudrais commander ceci.",
		SummarySpeechSub:    "(Excuse me, I would like to order this.)",
		SummaryTotal:        "Total",
		SummaryFinish:       "Terminer",
		NoticeNoItems:       "Aucun plat reconnu. Réessayez avec une photo plus nette.",
		NoticeError:         "Erreur lors de l'analyse du menu. Veuillez réessayer.",
		NoticeInvalidKey:    "Le service d'IA a refusé la clé API. Vérifiez sa configuration.",
		NoticeMissingKey:    "La clé API du service d'IA n'est pas configurée.",
	},
	"es-ES": {
		LanguageTitle:       "Elige tu idioma",
		CommonBack:          "Volver",
		UploadTitle:         "Escanear menú",
		UploadSubtitle:      "Toma fotos de todas las páginas. Las combinaremos en una lista.",
		UploadCamera:        "Cámara",
		UploadGallery:       "Galería",
		UploadAnalyze:       "Analizar",
		UploadNoImages:      "Sin imágenes",
		UploadAddPage:       "Añadir",
		ProcessingTitle:     "Analizando...",
		OrderingTitle:       "Menú",
		OrderingRescan:      "Escanear de nuevo",
		OrderingAdd:         "Añadir",
		OrderingTotalItems:  "Artículos",
		OrderingViewOrder:   "Ver pedido",
		SummaryTitle:        "Lista de pedido",
		SummaryShowStaff:    "Muestre esta pantalla al personal",
		SummarySpeechBubble: "Disculpe, me gustaría pedir esto.",
		SummarySpeechSub:    "(Excuse me, I would like to order this.)",
		SummaryTotal:        "Total",
		SummaryFinish:       "Terminar",
		NoticeNoItems:       "No se reconocieron platos. Inténtalo de nuevo con una foto más nítida.",
		NoticeError:         "Error al procesar el menú. Inténtalo de nuevo.",
		NoticeInvalidKey:    "El servicio de IA rechazó la clave API. Revisa la configuración.",
		NoticeMissingKey:    "La clave API del servicio de IA no está configurada.",
	},
}

var loadingSteps = map[string][]string{
	"en-US": {
		"Identifying menu layout...",
		"Recognizing text...",
		"Translating items...",
		"Extracting prices...",
		"Organizing categories...",
	},
	"zh-TW": {
		"正在識別菜單排版...",
		"正在辨識文字內容...",
		"正在翻譯菜色...",
		"正在擷取價格...",
		"正在分類整理...",
	},
	"ja-JP": {
		"レイアウトを認識中...",
		"テキストを読み取り中...",
		"メニューを翻訳中...",
		"価格を抽出中...",
		"カテゴリーを整理中...",
	},
	"ko-KR": {
		"메뉴 레이아웃 식별 중...",
		"텍스트 인식 중...",
		"메뉴 번역 중...",
		"가격 추출 중...",
		"카테고리 정리 중...",
	},
	"fr-FR": {
		"Analyse de la mise en page...",
		"Reconnaissance du texte...",
		"Traduction en cours...",
		"Extraction des prix...",
		"Organisation des catégories...",
	},
	"es-ES": {
		"Identificando diseño...",
		"Reconociendo texto...",
		"Traduciendo artículos...",
		"Extrayendo precios...",
		"Organizando categorías...",
	},
}
