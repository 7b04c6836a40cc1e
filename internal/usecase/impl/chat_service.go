package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	deliverycontext "ondeta/internal/delivery/context"
	"ondeta/internal/domain/entity"
	domainerrors "ondeta/internal/domain/errors"
	"ondeta/internal/domain/service"
	"ondeta/internal/usecase"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/fx"
)

const (
	chatHistoryWindow = 6
	maxStarterTopics  = 6
	maxContextCast    = 5
)

var baseTopics = []string{
	"O que você achou do enredo?",
	"Qual personagem mais te marcou?",
	"Alguma cena te surpreendeu?",
	"O que achou do final?",
}

var seriesTopics = []string{
	"Qual sua temporada favorita?",
	"Teorias sobre os próximos episódios",
}

// genreTopics maps provider genre names, in English and Portuguese, to an extra topic.
var genreTopics = []struct {
	genres []string
	topic  string
}{
	{[]string{"Action", "Ação", "Action & Adventure", "Ação e Aventura"}, "As melhores cenas de ação"},
	{[]string{"Drama"}, "Momentos mais emocionantes"},
	{[]string{"Comedy", "Comédia"}, "Cenas mais engraçadas"},
	{[]string{"Horror", "Thriller", "Terror", "Suspense"}, "Momentos mais tensos"},
	{[]string{"Science Fiction", "Ficção científica", "Sci-Fi & Fantasy", "Ficção Científica e Fantasia"}, "Tecnologias e conceitos sci-fi"},
}

var welcomeTemplates = []string{
	`Oi! 🎬 Sou a Murphy, sua assistente cinematográfica! Estou aqui para bater um papo sobre "%s". O que você gostaria de saber ou discutir sobre esta obra?`,
	`Olá! ✨ Murphy aqui! Estou super animada para conversar sobre "%s" com você. Que tal começarmos explorando o que mais te chamou atenção?`,
	`E aí! 🌟 Sou a Murphy e adoro uma boa conversa sobre cinema! Vamos mergulhar juntos no universo de "%s"?`,
}

// chatService implements the ChatUsecase interface.
type chatService struct {
	catalog   service.CatalogProvider
	generator service.TextGenerator
	logger    *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	Catalog   service.CatalogProvider
	Generator service.TextGenerator
	Logger    *slog.Logger
}

// NewChatService creates a new chat service.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		catalog:   params.Catalog,
		generator: params.Generator,
		logger:    params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reply asks the generator about one title, with the recent history as context.
func (srv *chatService) Reply(ctx context.Context, input *usecase.ChatInput) (*usecase.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message is required")
	}

	title, err := srv.titleContext(ctx, input.MediaType, input.ID)
	if err != nil {
		return nil, err
	}

	reply, err := srv.generator.Generate(ctx, buildChatPrompt(title, input.History, message))
	if err != nil {
		srv.log(ctx).Warn("Assistant reply failed", slog.String("title", title.Title), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate reply")
	}

	return &usecase.ChatOutput{Reply: reply}, nil
}

// Starter builds the greeting and suggested topics for a title.
func (srv *chatService) Starter(ctx context.Context, mediaType, id string) (*usecase.ChatStarter, error) {
	title, err := srv.titleContext(ctx, mediaType, id)
	if err != nil {
		return nil, err
	}

	return &usecase.ChatStarter{
		Welcome: fmt.Sprintf(welcomeTemplates[rand.IntN(len(welcomeTemplates))], title.Title),
		Topics:  suggestedTopics(title),
		Title:   title,
	}, nil
}

// titleContext loads details and credits together and keeps what the prompt needs.
func (srv *chatService) titleContext(ctx context.Context, mediaType, id string) (*entity.TitleContext, error) {
	kind, err := parseTitleRef(mediaType, id)
	if err != nil {
		return nil, err
	}

	var (
		details *entity.TitleDetails
		credits *entity.Credits
	)

	p := pool.New().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		details, err = srv.catalog.Details(ctx, kind, id)

		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		if credits, err = srv.catalog.Credits(ctx, kind, id); err != nil {
			srv.log(ctx).Warn("Credits unavailable for chat", slog.String("id", id), slog.Any("error", err))
			credits = &entity.Credits{}
		}

		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return newTitleContext(kind, details, credits), nil
}

func newTitleContext(kind entity.MediaKind, details *entity.TitleDetails, credits *entity.Credits) *entity.TitleContext {
	tc := &entity.TitleContext{
		Title:       details.DisplayTitle(),
		Overview:    details.Overview,
		ReleaseDate: details.DisplayDate(),
		MediaType:   kind,
		Rating:      details.VoteAverage,
		Director:    credits.Director(),
		Genres:      make([]string, 0, len(details.Genres)),
		Cast:        make([]string, 0, maxContextCast),
	}

	for _, g := range details.Genres {
		tc.Genres = append(tc.Genres, g.Name)
	}
	for i, p := range credits.Cast {
		if i == maxContextCast {
			break
		}
		tc.Cast = append(tc.Cast, p.Name)
	}
	// Shows rarely credit a director; fall back to the creator.
	if tc.Director == "" && len(details.CreatedBy) > 0 {
		tc.Director = details.CreatedBy[0].Name
	}

	return tc
}

func suggestedTopics(title *entity.TitleContext) []string {
	topics := append([]string{}, baseTopics...)
	if title.MediaType == entity.MediaKindTV {
		topics = append(topics, seriesTopics...)
	}
	for _, gt := range genreTopics {
		for _, g := range gt.genres {
			if title.HasGenre(g) {
				topics = append(topics, gt.topic)

				break
			}
		}
	}

	rand.Shuffle(len(topics), func(i, j int) { topics[i], topics[j] = topics[j], topics[i] })
	if len(topics) > maxStarterTopics {
		topics = topics[:maxStarterTopics]
	}

	return topics
}

func systemPrompt(t *entity.TitleContext) string {
	kind := "Filme"
	if t.MediaType == entity.MediaKindTV {
		kind = "Série"
	}

	var b strings.Builder
	b.WriteString("Você é Murphy, uma assistente de IA especializada em cinema e entretenimento, inspirada na personagem Murphy Cooper do filme Interestelar. Você é curiosa, inteligente e apaixonada por descobrir e discutir todos os aspectos de filmes e séries.\n\n")
	b.WriteString("CONTEXTO ATUAL:\n")
	fmt.Fprintf(&b, "Título: %s\n", t.Title)
	fmt.Fprintf(&b, "Tipo: %s\n", kind)
	fmt.Fprintf(&b, "Sinopse: %s\n", t.Overview)
	fmt.Fprintf(&b, "Data de lançamento: %s\n", t.ReleaseDate)
	fmt.Fprintf(&b, "Gêneros: %s\n", strings.Join(t.Genres, ", "))
	fmt.Fprintf(&b, "Elenco principal: %s\n", strings.Join(t.Cast, ", "))
	fmt.Fprintf(&b, "Diretor/Produtor: %s\n", t.Director)
	fmt.Fprintf(&b, "Avaliação: %.1f/10\n\n", t.Rating)
	b.WriteString("SUAS INSTRUÇÕES:\n")
	fmt.Fprintf(&b, "1. Foque EXCLUSIVAMENTE em %q e tópicos relacionados\n", t.Title)
	b.WriteString("2. Seja entusiasta, conhecedora e envolvente como Murphy\n")
	b.WriteString("3. Use emojis moderadamente para tornar a conversa mais dinâmica\n")
	b.WriteString("4. Forneça análises profundas sobre enredo, personagens, cinematografia, trilha sonora, etc.\n")
	b.WriteString("5. Faça conexões inteligentes com outros filmes/séries quando relevante\n")
	fmt.Fprintf(&b, "6. Se perguntarem sobre outros filmes/séries não relacionados, redirecione gentilmente para %q\n", t.Title)
	b.WriteString("7. Mantenha um tom amigável mas inteligente, como Murphy faria\n\n")
	b.WriteString("BLOQUEIOS:\n")
	b.WriteString("- NÃO discuta política, religião ou temas controversos não relacionados ao filme\n")
	fmt.Fprintf(&b, "- NÃO forneça informações sobre outros filmes/séries além de %q\n", t.Title)
	b.WriteString("- NÃO responda perguntas pessoais sobre você como IA\n\n")
	b.WriteString("Responda sempre em português brasileiro e seja a Murphy que os fãs de cinema adorariam conhecer!")

	return b.String()
}

// buildChatPrompt assembles system prompt, the last few turns and the new message into one text prompt.
func buildChatPrompt(t *entity.TitleContext, history []entity.ChatMessage, message string) string {
	var b strings.Builder
	b.WriteString(systemPrompt(t))
	b.WriteString("\n\n")

	if len(history) > chatHistoryWindow {
		history = history[len(history)-chatHistoryWindow:]
	}
	if len(history) > 0 {
		b.WriteString("HISTÓRICO DA CONVERSA:\n")
		for _, msg := range history {
			speaker := "Assistente"
			if msg.Role == entity.ChatRoleUser {
				speaker = "Usuário"
			}
			fmt.Fprintf(&b, "%s: %s\n", speaker, msg.Content)
		}
	}

	fmt.Fprintf(&b, "\nMENSAGEM ATUAL DO USUÁRIO: %s\n\n", message)
	fmt.Fprintf(&b, "Responda focando exclusivamente em %q:", t.Title)

	return b.String()
}
