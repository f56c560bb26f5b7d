package i18n

import (
	"sync"
	"testing"
	"testing/fstest"
)

// setupTestLocales cria um fs.FS em memória com locales de teste
func setupTestLocales() fstest.MapFS {
	return fstest.MapFS{
		"en.json": &fstest.MapFile{Data: []byte(`{
  "welcome": "Welcome, {{.Name}}!",
  "guest_created": "Guest created successfully",
  "error.forbidden.detail": "Access to screen {{.Tela}} is not granted"
}`)},
		"pt-BR.json": &fstest.MapFile{Data: []byte(`{
  "welcome": "Bem-vindo, {{.Name}}!",
  "guest_created": "Hóspede criado com sucesso",
  "error.forbidden.detail": "Seu cargo não possui acesso à tela {{.Tela}}"
}`)},
		"es.json": &fstest.MapFile{Data: []byte(`{
  "welcome": "¡Bienvenido, {{.Name}}!",
  "guest_created": "Huésped creado exitosamente"
}`)},
	}
}

func TestNewServiceFromFS(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		service, err := NewServiceFromFS(setupTestLocales(), "en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "en" {
			t.Errorf("esperava idioma padrão 'en', obteve '%s'", service.GetDefaultLanguage())
		}

		supportedLangs := service.GetSupportedLanguages()
		if len(supportedLangs) != 3 {
			t.Errorf("esperava 3 idiomas suportados, obteve %d", len(supportedLangs))
		}
	})

	t.Run("erro quando não há arquivos de locale", func(t *testing.T) {
		_, err := NewServiceFromFS(fstest.MapFS{}, "en")
		if err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		_, err := NewServiceFromFS(setupTestLocales(), "fr")
		if err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})
}

func TestNewService_LocalesEmbutidos(t *testing.T) {
	// Os locales embarcados devem sempre conter o idioma padrão do sistema
	service, err := NewService("en")
	if err != nil {
		t.Fatalf("esperava sucesso com locales embutidos, obteve erro: %v", err)
	}

	if !service.IsLanguageSupported("pt-BR") {
		t.Error("esperava suporte a pt-BR nos locales embutidos")
	}
}

func TestService_T(t *testing.T) {
	service, err := NewServiceFromFS(setupTestLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	t.Run("traduz mensagem simples em inglês", func(t *testing.T) {
		result := service.T("en", "guest_created")
		expected := "Guest created successfully"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem simples em português", func(t *testing.T) {
		result := service.T("pt-BR", "guest_created")
		expected := "Hóspede criado com sucesso"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("interpola o nome da tela na mensagem de acesso negado", func(t *testing.T) {
		result := service.T("pt-BR", "error.forbidden.detail", map[string]interface{}{"Tela": "FINANCEIRO"})
		expected := "Seu cargo não possui acesso à tela FINANCEIRO"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("fallback para idioma padrão quando chave não existe no idioma solicitado", func(t *testing.T) {
		result := service.T("es", "error.forbidden.detail", map[string]interface{}{"Tela": "CADASTRO"})
		expected := "Access to screen CADASTRO is not granted"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("retorna chave quando tradução não existe", func(t *testing.T) {
		result := service.T("en", "chave.inexistente")
		expected := "chave.inexistente"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})
}

func TestService_IsLanguageSupported(t *testing.T) {
	service, err := NewServiceFromFS(setupTestLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	tests := []struct {
		lang     string
		expected bool
	}{
		{"en", true},
		{"pt-BR", true},
		{"es", true},
		{"fr", false},
		{"de", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := service.IsLanguageSupported(tt.lang)
			if result != tt.expected {
				t.Errorf("para idioma '%s', esperava %v, obteve %v", tt.lang, tt.expected, result)
			}
		})
	}
}

func TestService_ThreadSafety(t *testing.T) {
	service, err := NewServiceFromFS(setupTestLocales(), "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	// Executar traduções concorrentemente
	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			_ = service.T("en", "welcome", map[string]interface{}{"Name": "Test"})
		}()

		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "guest_created")
		}()

		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("en")
		}()
	}

	// Se houver race condition, este teste falhará com -race flag
	wg.Wait()
}
