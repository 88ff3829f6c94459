package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/PrathameshWCE/Offcentre/internal/catalog"
	"github.com/PrathameshWCE/Offcentre/internal/repository"
	"github.com/PrathameshWCE/Offcentre/internal/service"
	"github.com/PrathameshWCE/Offcentre/internal/store"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Бот анонсов: позволяет просматривать каталог мест, подписываться на анонсы
// новых публикаций и рассылать их подписчикам (команда администратора).
func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "offcentre.db"
	}
	kv, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Не удалось открыть хранилище: %v", err)
	}
	defer kv.Close()

	cat := catalog.New()
	placeService := service.NewPlaceService(cat)
	postService := service.NewPostService(repository.NewPostRepository(kv))
	announceService := service.NewAnnounceService(repository.NewSubscriptionRepository(kv.DB()))

	adminID, _ := strconv.ParseInt(os.Getenv("ADMIN_TELEGRAM_ID"), 10, 64)

	botToken := os.Getenv("BOT_TOKEN")
	if botToken == "" {
		log.Fatal("Не указан токен бота (BOT_TOKEN)")
	}
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		log.Fatal("Ошибка инициализации бота:", err)
	}
	log.Printf("Запущен бот %s", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	for update := range updates {
		// --- CallbackQuery (inline buttons) ---
		if cq := update.CallbackQuery; cq != nil {
			bot.Request(tgbotapi.NewCallback(cq.ID, ""))
			chatID := cq.Message.Chat.ID
			data := cq.Data

			switch {
			// Показ деталей места
			case strings.HasPrefix(data, "PLACE_"):
				id := strings.TrimPrefix(data, "PLACE_")
				details, err := placeService.Details(id, service.ReviewSortUpvotes)
				if err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Место не найдено."))
					continue
				}
				p := details.Place
				text := fmt.Sprintf(
					"*%s*\n%s, %s - рейтинг %.1f\n%s\n\n[Открыть в картах](https://maps.google.com/?q=%f,%f)",
					p.Name, p.City, p.State, p.Rating, p.Description, p.Latitude, p.Longitude,
				)
				msg := tgbotapi.NewMessage(chatID, text)
				msg.ParseMode = "Markdown"
				bot.Send(msg)

			case data == "subscribe":
				if err := announceService.Subscribe(chatID); err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Не удалось оформить подписку."))
				} else {
					bot.Send(tgbotapi.NewMessage(chatID, "Вы подписаны на анонсы новых публикаций."))
				}

			case data == "unsubscribe":
				if err := announceService.Unsubscribe(chatID); err != nil {
					bot.Send(tgbotapi.NewMessage(chatID, "Не удалось отменить подписку."))
				} else {
					bot.Send(tgbotapi.NewMessage(chatID, "Подписка отменена."))
				}
			}
			continue
		}

		if update.Message == nil {
			continue
		}
		chatID := update.Message.Chat.ID
		text := strings.TrimSpace(update.Message.Text)

		switch {
		case text == "/start":
			msg := tgbotapi.NewMessage(chatID,
				"OffCentre: скрытые места рядом с вами.\nКоманды: places - каталог, подписка - кнопками ниже.")
			row := tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("Подписаться", "subscribe"),
				tgbotapi.NewInlineKeyboardButtonData("Отписаться", "unsubscribe"),
			)
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(row)
			bot.Send(msg)

		case text == "places":
			rows := [][]tgbotapi.InlineKeyboardButton{}
			for _, p := range cat.All() {
				label := fmt.Sprintf("%s (%s) - %.1f", p.Name, p.City, p.Rating)
				btn := tgbotapi.NewInlineKeyboardButtonData(label, "PLACE_"+p.ID)
				rows = append(rows, tgbotapi.NewInlineKeyboardRow(btn))
			}
			msg := tgbotapi.NewMessage(chatID, "Места каталога:")
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
			bot.Send(msg)

		// Рассылка последних публикаций подписчикам (только администратор)
		case text == "broadcast" && chatID == adminID:
			posts, err := postService.List()
			if err != nil || len(posts) == 0 {
				bot.Send(tgbotapi.NewMessage(chatID, "Нет публикаций для рассылки."))
				continue
			}
			latest := posts[len(posts)-1]
			subscribers, err := announceService.GetSubscriberIDs()
			if err != nil {
				bot.Send(tgbotapi.NewMessage(chatID, "Не удалось получить подписчиков."))
				continue
			}
			announcement := fmt.Sprintf("Новая публикация: %s (%s)\n%s",
				latest.PlaceName, latest.Location, latest.Content)
			for _, sub := range subscribers {
				bot.Send(tgbotapi.NewMessage(sub, announcement))
			}
			bot.Send(tgbotapi.NewMessage(chatID,
				fmt.Sprintf("Рассылка отправлена %d подписчикам.", len(subscribers))))

		default:
			bot.Send(tgbotapi.NewMessage(chatID, "Неизвестная команда. Попробуйте /start."))
		}
	}
}
